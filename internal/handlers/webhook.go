package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/paclead/paclead-backend/internal/repos"
	"github.com/paclead/paclead-backend/internal/services"
)

// WebhookHandler is the public chat relay: external messaging platforms post
// a message on behalf of a tenant identified by id. Unknown tenant is the
// only hard failure; completion problems degrade to an in-band apology.
type WebhookHandler struct {
	userRepo    repos.UserRepo
	chatService services.ChatService
}

func NewWebhookHandler(userRepo repos.UserRepo, chatService services.ChatService) *WebhookHandler {
	return &WebhookHandler{userRepo: userRepo, chatService: chatService}
}

func (wh *WebhookHandler) ProcessMessage(c *gin.Context) {
	var req struct {
		UserID   string `json:"user_id"`
		Mensagem string `json:"mensagem"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Mensagem == "" {
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("user_id and mensagem are required"))
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", errors.New("invalid user_id"))
		return
	}

	users, err := wh.userRepo.GetByIDs(c.Request.Context(), nil, []uuid.UUID{userID})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "lookup_failed", err)
		return
	}
	if len(users) == 0 {
		RespondError(c, http.StatusNotFound, "unknown_tenant", errors.New("user not found"))
		return
	}

	reply, err := wh.chatService.HandleMessage(c.Request.Context(), userID, req.Mensagem)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "chat_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"resposta":           reply.Response,
		"user_id":            userID,
		"products_mentioned": reply.MentionedProducts,
	})
}
