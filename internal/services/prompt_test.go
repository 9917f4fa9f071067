package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paclead/paclead-backend/internal/types"
)

func sampleSnapshot() []*types.Product {
	return []*types.Product{
		{
			ID:          uuid.New(),
			Name:        "Smartphone XYZ",
			Description: "Tela AMOLED de 6.5 polegadas",
			Price:       decimal.NewFromFloat(1299.99),
			Stock:       12,
		},
		{
			ID:          uuid.New(),
			Name:        "Fone Bluetooth",
			Description: "Cancelamento de ruído ativo",
			Price:       decimal.NewFromFloat(199.90),
			Stock:       40,
		},
	}
}

func TestBuildSystemPromptDeterministic(t *testing.T) {
	profile := DefaultAssistantProfile()
	snapshot := sampleSnapshot()

	first := BuildSystemPrompt(profile, snapshot)
	second := BuildSystemPrompt(profile, snapshot)
	if first != second {
		t.Fatalf("BuildSystemPrompt is not deterministic for identical inputs")
	}
	if first == "" {
		t.Fatalf("BuildSystemPrompt returned an empty prompt")
	}
}

func TestBuildSystemPromptProductLines(t *testing.T) {
	prompt := BuildSystemPrompt(DefaultAssistantProfile(), sampleSnapshot())

	wantLines := []string{
		"- Smartphone XYZ: Tela AMOLED de 6.5 polegadas | Price: 1299.99 | Stock: 12 units",
		"- Fone Bluetooth: Cancelamento de ruído ativo | Price: 199.90 | Stock: 40 units",
	}
	for _, line := range wantLines {
		if !strings.Contains(prompt, line) {
			t.Fatalf("prompt missing product line %q\nprompt:\n%s", line, prompt)
		}
	}
	if strings.Contains(prompt, NoProductsSentence) {
		t.Fatalf("prompt contains the empty-catalog sentence despite a non-empty snapshot")
	}
}

func TestBuildSystemPromptEmptySnapshot(t *testing.T) {
	prompt := BuildSystemPrompt(DefaultAssistantProfile(), nil)
	if !strings.Contains(prompt, NoProductsSentence) {
		t.Fatalf("empty snapshot must render the fixed no-products sentence, got:\n%s", prompt)
	}
	if strings.Contains(prompt, "- ") {
		t.Fatalf("empty snapshot must not render any product line")
	}
}

func TestBuildSystemPromptDefaultProfile(t *testing.T) {
	def := DefaultAssistantProfile()

	cases := []struct {
		name string
		want string
	}{
		{name: "persona_name", want: "Vendedora Virtual"},
		{name: "personality", want: "Amigável, profissional e prestativa"},
		{name: "tone", want: "Amigável e profissional"},
		{name: "sales_approach", want: "Consultiva, focando nas necessidades do cliente"},
		{name: "greeting", want: "Olá! Como posso ajudá-lo hoje?"},
		{name: "language", want: "pt-br"},
	}

	prompt := BuildSystemPrompt(def, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !strings.Contains(prompt, tc.want) {
				t.Fatalf("default prompt missing %q", tc.want)
			}
		})
	}
}

func TestBuildSystemPromptCustomProfile(t *testing.T) {
	profile := types.AssistantProfile{
		Name:            "Clara",
		Personality:     "Direta e objetiva",
		Tone:            "Formal",
		SalesApproach:   "Agressiva",
		GreetingMessage: "Bem-vindo!",
		Language:        "en-us",
	}
	prompt := BuildSystemPrompt(profile, nil)
	for _, want := range []string{"Clara", "Direta e objetiva", "Formal", "Agressiva", "Bem-vindo!", "en-us"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing configured profile value %q", want)
		}
	}
}
