package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/paclead/paclead-backend/internal/logger"
	"github.com/paclead/paclead-backend/internal/utils"
)

// Generation parameters are fixed: one attempt, no streaming.
const (
	completionMaxTokens   = 500
	completionTemperature = 0.7
)

// CompletionUsage mirrors the token accounting returned by the API.
type CompletionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResult is the explicit outcome of one completion call: either
// generated text or a failure detail, never both. Callers branch on Failed()
// instead of unwrapping errors.
type CompletionResult struct {
	Text          string
	FailureDetail string
	Usage         *CompletionUsage
}

func (r CompletionResult) Failed() bool {
	return r.FailureDetail != ""
}

type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) CompletionResult
	Model() string
}

type openAICompletionClient struct {
	log     *logger.Logger
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAICompletionClient requires OPENAI_API_KEY: without a credential the
// constructor fails and the process refuses to start (strict guard).
func NewOpenAICompletionClient(log *logger.Logger, model string) (CompletionClient, error) {
	serviceLog := log.With("service", "CompletionClient")

	apiKey := utils.GetEnv("OPENAI_API_KEY", "", log)
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	timeoutSec := utils.GetEnvAsInt("OPENAI_TIMEOUT_SECONDS", 20, log)

	return &openAICompletionClient{
		log:     serviceLog,
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: time.Duration(timeoutSec) * time.Second,
	}, nil
}

func (c *openAICompletionClient) Model() string {
	return c.model
}

func (c *openAICompletionClient) Complete(ctx context.Context, systemPrompt, userMessage string) CompletionResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	})
	if err != nil {
		c.log.Warn("Completion call failed", "model", c.model, "error", err)
		return CompletionResult{FailureDetail: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return CompletionResult{FailureDetail: "empty completion response"}
	}

	return CompletionResult{
		Text: strings.TrimSpace(resp.Choices[0].Message.Content),
		Usage: &CompletionUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
}
