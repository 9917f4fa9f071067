package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/paclead/paclead-backend/internal/requestdata"
	"github.com/paclead/paclead-backend/internal/services"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat runs one turn for the authenticated tenant. The reply is 200 even when
// the completion call failed; only a malformed request or a store read error
// produces a non-2xx status.
func (ch *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("a message is required"))
		return
	}
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("not authenticated"))
		return
	}
	reply, err := ch.chatService.HandleMessage(c.Request.Context(), rd.UserID, req.Message)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "chat_failed", err)
		return
	}
	RespondOK(c, reply)
}
