package restaurant

import (
	"context"

	"tablebooker/internal/model"
	"tablebooker/pkg/log"
	"tablebooker/pkg/resdiary"
)

// builtinRestaurants is the fallback directory used when the reservation
// API cannot be reached at startup. Order matters: it is the order venues
// are presented for ordinal selection.
var builtinRestaurants = []model.Restaurant{
	{Name: "TheHungryUnicorn", Cuisine: "European", PriceRange: "$$", Description: "Fine dining with a seasonal European menu"},
	{Name: "PizzaPalace", Cuisine: "Italian", PriceRange: "$$", Description: "Wood-fired pizza and fresh pasta"},
	{Name: "SushiZen", Cuisine: "Japanese", PriceRange: "$$", Description: "Traditional sushi and sashimi"},
	{Name: "CafeBistro", Cuisine: "French", PriceRange: "$", Description: "Casual French bistro classics"},
}

// lister is the slice of the reservation API the directory needs.
type lister interface {
	ListRestaurants(ctx context.Context) ([]resdiary.RestaurantInfo, error)
}

// Directory is the immutable set of known venues, loaded once at startup.
type Directory struct {
	restaurants []model.Restaurant
}

// LoadDirectory fetches the venue list from the reservation API, falling
// back to the built-in set so the service still boots when the API is down.
func LoadDirectory(ctx context.Context, l log.Logger, client lister) *Directory {
	infos, err := client.ListRestaurants(ctx)
	if err != nil || len(infos) == 0 {
		l.Warnf(ctx, "restaurant listing unavailable, using built-in directory: %v", err)
		return &Directory{restaurants: builtinRestaurants}
	}

	restaurants := make([]model.Restaurant, 0, len(infos))
	for _, info := range infos {
		restaurants = append(restaurants, model.Restaurant{
			Name:        info.Name,
			Cuisine:     info.Cuisine,
			PriceRange:  info.PriceRange,
			Description: info.Description,
		})
	}
	l.Infof(ctx, "loaded %d restaurants from reservation API", len(restaurants))
	return &Directory{restaurants: restaurants}
}

// NewDirectory builds a directory from a fixed venue list. Used by tests
// and by deployments that pin the list in config.
func NewDirectory(restaurants []model.Restaurant) *Directory {
	return &Directory{restaurants: restaurants}
}

// All returns the venues in stable load order.
func (d *Directory) All() []model.Restaurant {
	return d.restaurants
}

// Len returns the number of known venues.
func (d *Directory) Len() int {
	return len(d.restaurants)
}

// Get looks a venue up by exact microsite name.
func (d *Directory) Get(name string) (model.Restaurant, bool) {
	for _, r := range d.restaurants {
		if r.Name == name {
			return r, true
		}
	}
	return model.Restaurant{}, false
}
