package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paclead/paclead-backend/internal/services"
)

type AssistantProfileHandler struct {
	profileService services.AssistantProfileService
}

func NewAssistantProfileHandler(profileService services.AssistantProfileService) *AssistantProfileHandler {
	return &AssistantProfileHandler{profileService: profileService}
}

// Get returns the stored profile, or the documented default marked with
// "default": true when the tenant has not configured one yet.
func (ph *AssistantProfileHandler) Get(c *gin.Context) {
	profile, err := ph.profileService.Get(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusBadRequest, "get_failed", err)
		return
	}
	if profile == nil {
		def := services.DefaultAssistantProfile()
		c.JSON(http.StatusOK, gin.H{"profile": def, "default": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile, "default": false})
}

func (ph *AssistantProfileHandler) Upsert(c *gin.Context) {
	var input services.AssistantProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}
	profile, err := ph.profileService.Upsert(c.Request.Context(), input)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "upsert_failed", err)
		return
	}
	RespondOK(c, profile)
}
