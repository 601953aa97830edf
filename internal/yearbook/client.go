package yearbook

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
	log "github.com/sirupsen/logrus"
	"github.com/studybuddy/backend/internal/config"
)

// LLMClient is the interface both yearbook writers satisfy.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// NewLLMClient picks the mock or the real API based on configuration.
func NewLLMClient(cfg *config.Config) LLMClient {
	if cfg.MockLLM {
		log.Info("[yearbook] using mock yearbook writer")
		return NewMockClient()
	}
	log.WithField("model", cfg.AnthropicModel).Info("[yearbook] using Anthropic API")
	return NewAPIClient(cfg.AnthropicModel)
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   8192,
		Temperature: param.NewOpt(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.WithField("attempt", attempt+1).Infof("[yearbook] retrying Anthropic API call in %v", sleepDuration)
			time.Sleep(sleepDuration)
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.WithError(err).Warnf("[yearbook] Anthropic API attempt %d failed", attempt+1)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	mockJSON := `{
  "content": "# My School Year\n\n## September\n\n[Mock] The year opened with nervous first days and new faces that quickly became familiar ones. Between the stack of syllabi and the scramble for lockers, a routine took shape.\n\n## Winter\n\n[Mock] Exam season tested everyone's patience, but the late-night study groups turned into some of the best memories of the year.\n\n## Looking Back\n\n[Mock] Looking back, this was a year of small victories stacked into something bigger.",
  "main_themes": ["friendship", "growth", "perseverance"]
}`
	return &LLMResponse{
		Content:      mockJSON,
		PromptTokens: 1200,
		OutputTokens: 900,
	}, nil
}
