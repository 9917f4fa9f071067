package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paclead/paclead-backend/internal/logger"
	"github.com/paclead/paclead-backend/internal/normalization"
	"github.com/paclead/paclead-backend/internal/repos"
	"github.com/paclead/paclead-backend/internal/types"
)

type AssistantProfileInput struct {
	Name            string `json:"name"`
	Personality     string `json:"personality"`
	Tone            string `json:"tone"`
	SalesApproach   string `json:"sales_approach"`
	GreetingMessage string `json:"greeting_message"`
	Language        string `json:"language"`
}

type AssistantProfileService interface {
	// Get returns the stored profile, or nil when the tenant has none.
	Get(ctx context.Context) (*types.AssistantProfile, error)
	Upsert(ctx context.Context, input AssistantProfileInput) (*types.AssistantProfile, error)
}

type assistantProfileService struct {
	log         *logger.Logger
	profileRepo repos.AssistantProfileRepo
}

func NewAssistantProfileService(log *logger.Logger, profileRepo repos.AssistantProfileRepo) AssistantProfileService {
	return &assistantProfileService{
		log:         log.With("service", "AssistantProfileService"),
		profileRepo: profileRepo,
	}
}

func (s *assistantProfileService) Get(ctx context.Context) (*types.AssistantProfile, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, nil, ownerID)
}

func (s *assistantProfileService) Upsert(ctx context.Context, input AssistantProfileInput) (*types.AssistantProfile, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	input.Name = normalization.TrimInputString(input.Name)
	if input.Name == "" {
		return nil, fmt.Errorf("a persona name is required")
	}
	if input.Language == "" {
		input.Language = "pt-br"
	}
	profile := &types.AssistantProfile{
		ID:              uuid.New(),
		UserID:          ownerID,
		Name:            input.Name,
		Personality:     input.Personality,
		Tone:            input.Tone,
		SalesApproach:   input.SalesApproach,
		GreetingMessage: input.GreetingMessage,
		Language:        input.Language,
	}
	stored, uErr := s.profileRepo.Upsert(ctx, nil, profile)
	if uErr != nil {
		return nil, fmt.Errorf("failed to upsert assistant profile: %w", uErr)
	}
	return stored, nil
}
