package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "tablebooker/internal/chat/delivery/http"
	"tablebooker/internal/middleware"
	restaurantHTTP "tablebooker/internal/restaurant/delivery/http"
)

// setupChatDomain registers the chat conversation routes and the
// restaurant directory listing.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group("/myresource"), h, mw)
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Chat: /api/v1/chat/messages, /api/v1/chat/sessions/:id
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, mw)

	// Directory: /api/v1/restaurants
	rh := restaurantHTTP.New(srv.l, srv.directory)
	restaurantHTTP.RegisterRoutes(api.Group("/restaurants"), rh, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
