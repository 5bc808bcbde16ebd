package http

import (
	"tablebooker/internal/restaurant"
	"tablebooker/pkg/log"
)

type handler struct {
	l   log.Logger
	dir *restaurant.Directory
}

// New creates a new HTTP handler for the restaurant directory.
func New(l log.Logger, dir *restaurant.Directory) *handler {
	return &handler{
		l:   l,
		dir: dir,
	}
}
