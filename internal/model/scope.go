package model

// Scope carries per-request identity through the use case layer.
type Scope struct {
	SessionID string
}
