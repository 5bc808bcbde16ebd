package http

import (
	"github.com/gin-gonic/gin"

	"tablebooker/internal/model"
	"tablebooker/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Processes one user message within a conversation and returns the assistant reply. Omit session_id to start a new conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message payload"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{SessionID: req.SessionID}

	output, err := h.uc.HandleMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// GetSession godoc
// @Summary     Inspect a conversation
// @Description Returns the stored state of a conversation without modifying it.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingSessionID, nil)
		return
	}

	output, err := h.uc.GetSession(ctx, model.Scope{SessionID: id})
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSession: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}
