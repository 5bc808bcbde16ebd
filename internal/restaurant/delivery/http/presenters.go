package http

import (
	"tablebooker/internal/model"
)

type restaurantResp struct {
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	PriceRange  string `json:"price_range"`
	Description string `json:"description"`
}

type listResp struct {
	Restaurants []restaurantResp `json:"restaurants"`
	Total       int              `json:"total"`
}

func (h *handler) newListResp(restaurants []model.Restaurant) listResp {
	items := make([]restaurantResp, len(restaurants))
	for i, r := range restaurants {
		items[i] = restaurantResp{
			Name:        r.Name,
			Cuisine:     r.Cuisine,
			PriceRange:  r.PriceRange,
			Description: r.Description,
		}
	}
	return listResp{Restaurants: items, Total: len(items)}
}
