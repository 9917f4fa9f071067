package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/paclead/paclead-backend/internal/logger"
	"github.com/paclead/paclead-backend/internal/repos"
	"github.com/paclead/paclead-backend/internal/types"
)

// ChatReply is what both chat surfaces return. MentionedProducts is never nil.
type ChatReply struct {
	Response          string           `json:"response"`
	MentionedProducts []*types.Product `json:"products_mentioned"`
}

type ChatService interface {
	// HandleMessage runs one chat turn for the given tenant. Completion
	// failures degrade to an in-band apology; an error return means the
	// catalog or profile could not be read at all.
	HandleMessage(ctx context.Context, ownerID uuid.UUID, message string) (*ChatReply, error)
}

type chatService struct {
	log          *logger.Logger
	productRepo  repos.ProductRepo
	profileRepo  repos.AssistantProfileRepo
	callLogRepo  repos.ChatCallLogRepo
	completion   CompletionClient
	catalogLimit int
}

func NewChatService(
	log *logger.Logger,
	productRepo repos.ProductRepo,
	profileRepo repos.AssistantProfileRepo,
	callLogRepo repos.ChatCallLogRepo,
	completion CompletionClient,
	catalogLimit int,
) ChatService {
	if catalogLimit <= 0 {
		catalogLimit = 200
	}
	return &chatService{
		log:          log.With("service", "ChatService"),
		productRepo:  productRepo,
		profileRepo:  profileRepo,
		callLogRepo:  callLogRepo,
		completion:   completion,
		catalogLimit: catalogLimit,
	}
}

func (s *chatService) HandleMessage(ctx context.Context, ownerID uuid.UUID, message string) (*ChatReply, error) {
	profile, err := s.resolveProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// Read the catalog once. The same snapshot feeds the prompt and the
	// mention extraction so mid-request stock changes cannot skew results.
	snapshot, err := s.productRepo.ListByOwner(ctx, nil, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog snapshot: %w", err)
	}
	if len(snapshot) > s.catalogLimit {
		snapshot = snapshot[:s.catalogLimit]
	}

	systemPrompt := BuildSystemPrompt(profile, snapshot)

	started := time.Now()
	result := s.completion.Complete(ctx, systemPrompt, message)
	duration := time.Since(started)

	s.writeCallLog(ctx, ownerID, systemPrompt, result, duration)

	if result.Failed() {
		s.log.Warn("Completion failed, degrading to apology", "owner_id", ownerID, "detail", result.FailureDetail)
		return &ChatReply{
			Response:          fmt.Sprintf("Desculpe, ocorreu um erro. Tente novamente em alguns instantes. Erro: %s", result.FailureDetail),
			MentionedProducts: []*types.Product{},
		}, nil
	}

	return &ChatReply{
		Response:          result.Text,
		MentionedProducts: ExtractMentions(result.Text, snapshot),
	}, nil
}

func (s *chatService) resolveProfile(ctx context.Context, ownerID uuid.UUID) (types.AssistantProfile, error) {
	stored, err := s.profileRepo.GetByUserID(ctx, nil, ownerID)
	if err != nil {
		return types.AssistantProfile{}, fmt.Errorf("failed to load assistant profile: %w", err)
	}
	if stored == nil {
		return DefaultAssistantProfile(), nil
	}
	return *stored, nil
}

// writeCallLog is best effort: an audit failure never affects the reply.
func (s *chatService) writeCallLog(ctx context.Context, ownerID uuid.UUID, prompt string, result CompletionResult, duration time.Duration) {
	if s.callLogRepo == nil {
		return
	}
	row := &types.ChatCallLog{
		ID:         uuid.New(),
		UserID:     &ownerID,
		Model:      s.completion.Model(),
		Prompt:     prompt,
		Response:   result.Text,
		Success:    !result.Failed(),
		Error:      result.FailureDetail,
		DurationMs: duration.Milliseconds(),
	}
	if result.Usage != nil {
		if raw, err := json.Marshal(result.Usage); err == nil {
			row.Usage = datatypes.JSON(raw)
		}
	}
	if _, err := s.callLogRepo.Create(ctx, nil, []*types.ChatCallLog{row}); err != nil {
		s.log.Warn("Failed to write chat call log", "error", err)
	}
}
