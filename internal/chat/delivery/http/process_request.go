package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// processSendMessageReq binds and validates the send message request body.
// A blank session id means "start a new conversation": the server mints
// one so the client can carry it on subsequent turns.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return req, req.validate()
}
