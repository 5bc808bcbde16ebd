package http

import (
	"github.com/gin-gonic/gin"

	"tablebooker/pkg/response"
)

// List godoc
// @Summary     List restaurants
// @Description Returns all bookable venues in presentation order.
// @Tags        Restaurant
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/restaurants [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, h.newListResp(h.dir.All()))
}
