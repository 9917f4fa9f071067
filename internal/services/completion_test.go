package services

import (
	"testing"

	"github.com/paclead/paclead-backend/internal/logger"
)

func TestNewOpenAICompletionClientRequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := NewOpenAICompletionClient(logger.NewNop(), "gpt-3.5-turbo"); err == nil {
		t.Fatalf("constructor must fail without OPENAI_API_KEY")
	}
}

func TestNewOpenAICompletionClientDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	client, err := NewOpenAICompletionClient(logger.NewNop(), "")
	if err != nil {
		t.Fatalf("constructor failed with a key present: %v", err)
	}
	if client.Model() != "gpt-3.5-turbo" {
		t.Fatalf("default model = %q", client.Model())
	}
}

func TestCompletionResultFailed(t *testing.T) {
	if (CompletionResult{Text: "hello"}).Failed() {
		t.Fatalf("a result with text must not report failure")
	}
	if !(CompletionResult{FailureDetail: "timeout"}).Failed() {
		t.Fatalf("a result with a failure detail must report failure")
	}
	if (CompletionResult{}).Failed() {
		t.Fatalf("the zero result is not a failure")
	}
}
