package ai

import (
	"context"
	"errors"
	"fmt"

	"jobify/internal/config"

	openai "github.com/sashabaranov/go-openai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Temperature is fixed low so the model sticks to the requested format.
const Temperature = 0.3

var ErrNotConfigured = errors.New("AI model is not configured")

// Model answers one prompt with one reply.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewModel builds the provider named in cfg.
func NewModel(ctx context.Context, cfg config.AIConfig) (Model, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.APIKey, cfg.Model), nil
	case "googleai", "":
		return NewGoogleAI(ctx, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

// LangChain adapts any langchaingo model.
type LangChain struct {
	LLM llms.Model
}

func NewGoogleAI(ctx context.Context, apiKey, model string) (*LangChain, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &LangChain{LLM: llm}, nil
}

func (m *LangChain) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, m.LLM, prompt, llms.WithTemperature(Temperature))
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return resp, nil
}

type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{client: openai.NewClient(apiKey), model: model}
}

func (m *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in chat completion")
	}
	return resp.Choices[0].Message.Content, nil
}
