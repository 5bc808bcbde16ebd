package model

// Restaurant is one bookable venue known to the service.
type Restaurant struct {
	Name        string // microsite name used in reservation API paths
	Cuisine     string
	PriceRange  string // "$", "$$", "$$$"
	Description string
}
