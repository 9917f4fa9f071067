package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/paclead/paclead-backend/internal/logger"
	"github.com/paclead/paclead-backend/internal/types"
)

type fakeProductRepo struct {
	products  []*types.Product
	listCalls int
}

func (f *fakeProductRepo) Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error) {
	f.products = append(f.products, products...)
	return products, nil
}

func (f *fakeProductRepo) ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Product, error) {
	f.listCalls++
	var out []*types.Product
	for _, p := range f.products {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByIDForOwner(ctx context.Context, tx *gorm.DB, productID, ownerID uuid.UUID) (*types.Product, error) {
	for _, p := range f.products {
		if p.ID == productID && p.OwnerID == ownerID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) UpdateFieldsForOwner(ctx context.Context, tx *gorm.DB, productID, ownerID uuid.UUID, fields map[string]interface{}) (int64, error) {
	for _, p := range f.products {
		if p.ID == productID && p.OwnerID == ownerID {
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeProductRepo) DeleteByIDForOwner(ctx context.Context, tx *gorm.DB, productID, ownerID uuid.UUID) (int64, error) {
	for i, p := range f.products {
		if p.ID == productID && p.OwnerID == ownerID {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*types.AssistantProfile
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.AssistantProfile, error) {
	if f.profiles == nil {
		return nil, nil
	}
	return f.profiles[userID], nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, tx *gorm.DB, profile *types.AssistantProfile) (*types.AssistantProfile, error) {
	if f.profiles == nil {
		f.profiles = map[uuid.UUID]*types.AssistantProfile{}
	}
	f.profiles[profile.UserID] = profile
	return profile, nil
}

type fakeCallLogRepo struct {
	rows []*types.ChatCallLog
}

func (f *fakeCallLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.ChatCallLog) ([]*types.ChatCallLog, error) {
	f.rows = append(f.rows, logs...)
	return logs, nil
}

type stubCompletionClient struct {
	text          string
	failureDetail string
	gotSystem     string
	gotUser       string
}

func (s *stubCompletionClient) Complete(ctx context.Context, systemPrompt, userMessage string) CompletionResult {
	s.gotSystem = systemPrompt
	s.gotUser = userMessage
	if s.failureDetail != "" {
		return CompletionResult{FailureDetail: s.failureDetail}
	}
	return CompletionResult{Text: s.text, Usage: &CompletionUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}}
}

func (s *stubCompletionClient) Model() string {
	return "stub-model"
}

func newChatFixture(ownerID uuid.UUID, client CompletionClient) (*fakeProductRepo, *fakeProfileRepo, *fakeCallLogRepo, ChatService) {
	productRepo := &fakeProductRepo{
		products: []*types.Product{
			{
				ID:          uuid.New(),
				OwnerID:     ownerID,
				Name:        "Smartphone XYZ",
				Description: "Topo de linha",
				Price:       decimal.NewFromFloat(1299.99),
				Stock:       3,
			},
		},
	}
	profileRepo := &fakeProfileRepo{}
	callLogRepo := &fakeCallLogRepo{}
	svc := NewChatService(logger.NewNop(), productRepo, profileRepo, callLogRepo, client, 0)
	return productRepo, profileRepo, callLogRepo, svc
}

func TestHandleMessageSuccess(t *testing.T) {
	ownerID := uuid.New()
	client := &stubCompletionClient{text: "We have the Smartphone XYZ, great choice!"}
	productRepo, _, callLogRepo, svc := newChatFixture(ownerID, client)

	reply, err := svc.HandleMessage(context.Background(), ownerID, "What phones do you have?")
	if err != nil {
		t.Fatalf("HandleMessage returned error: %v", err)
	}
	if reply.Response != "We have the Smartphone XYZ, great choice!" {
		t.Fatalf("response text modified: %q", reply.Response)
	}
	if len(reply.MentionedProducts) != 1 || reply.MentionedProducts[0].Name != "Smartphone XYZ" {
		t.Fatalf("mentioned products = %+v, want exactly Smartphone XYZ", reply.MentionedProducts)
	}
	if client.gotUser != "What phones do you have?" {
		t.Fatalf("user message forwarded as %q", client.gotUser)
	}
	if !strings.Contains(client.gotSystem, "Smartphone XYZ") {
		t.Fatalf("system prompt missing the catalog snapshot")
	}
	// Snapshot identity: one catalog read feeds both prompt and mentions.
	if productRepo.listCalls != 1 {
		t.Fatalf("catalog read %d times, want exactly 1", productRepo.listCalls)
	}
	if len(callLogRepo.rows) != 1 || !callLogRepo.rows[0].Success {
		t.Fatalf("expected one successful call log row, got %+v", callLogRepo.rows)
	}
}

func TestHandleMessageCompletionFailure(t *testing.T) {
	ownerID := uuid.New()
	client := &stubCompletionClient{failureDetail: "api quota exceeded"}
	_, _, callLogRepo, svc := newChatFixture(ownerID, client)

	reply, err := svc.HandleMessage(context.Background(), ownerID, "Olá")
	if err != nil {
		t.Fatalf("completion failure must not surface as an error, got: %v", err)
	}
	if reply.Response == "" {
		t.Fatalf("apology text must be non-empty")
	}
	if !strings.Contains(reply.Response, "api quota exceeded") {
		t.Fatalf("apology must embed the failure detail, got %q", reply.Response)
	}
	if len(reply.MentionedProducts) != 0 {
		t.Fatalf("mention set must be empty on failure, got %+v", reply.MentionedProducts)
	}
	if len(callLogRepo.rows) != 1 || callLogRepo.rows[0].Success {
		t.Fatalf("expected one failed call log row, got %+v", callLogRepo.rows)
	}
	if callLogRepo.rows[0].Error != "api quota exceeded" {
		t.Fatalf("call log error = %q", callLogRepo.rows[0].Error)
	}
}

func TestHandleMessageMissingProfileUsesDefault(t *testing.T) {
	ownerID := uuid.New()
	client := &stubCompletionClient{text: "Olá!"}
	_, _, _, svc := newChatFixture(ownerID, client)

	if _, err := svc.HandleMessage(context.Background(), ownerID, "Oi"); err != nil {
		t.Fatalf("missing profile must not fail: %v", err)
	}
	if !strings.Contains(client.gotSystem, "Vendedora Virtual") {
		t.Fatalf("system prompt must use the default persona when no profile exists")
	}
}

func TestHandleMessageConfiguredProfile(t *testing.T) {
	ownerID := uuid.New()
	client := &stubCompletionClient{text: "Olá!"}
	_, profileRepo, _, svc := newChatFixture(ownerID, client)
	profileRepo.profiles = map[uuid.UUID]*types.AssistantProfile{
		ownerID: {
			UserID:          ownerID,
			Name:            "Clara",
			Personality:     "Direta",
			Tone:            "Formal",
			SalesApproach:   "Consultiva",
			GreetingMessage: "Bem-vindo!",
			Language:        "pt-br",
		},
	}

	if _, err := svc.HandleMessage(context.Background(), ownerID, "Oi"); err != nil {
		t.Fatalf("HandleMessage returned error: %v", err)
	}
	if !strings.Contains(client.gotSystem, "Clara") {
		t.Fatalf("system prompt must use the tenant's configured persona")
	}
}

func TestHandleMessageCatalogCap(t *testing.T) {
	ownerID := uuid.New()
	client := &stubCompletionClient{text: "ok"}
	productRepo := &fakeProductRepo{}
	for i := 0; i < 5; i++ {
		productRepo.products = append(productRepo.products, &types.Product{
			ID:      uuid.New(),
			OwnerID: ownerID,
			Name:    "Produto " + string(rune('A'+i)),
			Price:   decimal.NewFromInt(10),
		})
	}
	svc := NewChatService(logger.NewNop(), productRepo, &fakeProfileRepo{}, nil, client, 2)

	if _, err := svc.HandleMessage(context.Background(), ownerID, "Oi"); err != nil {
		t.Fatalf("HandleMessage returned error: %v", err)
	}
	if !strings.Contains(client.gotSystem, "Produto A") || !strings.Contains(client.gotSystem, "Produto B") {
		t.Fatalf("capped snapshot must keep the first products in order")
	}
	if strings.Contains(client.gotSystem, "Produto C") {
		t.Fatalf("snapshot cap not applied to the rendered prompt")
	}
}
