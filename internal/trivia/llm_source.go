package trivia

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deepdish/chicagotrail/internal/llm"
)

// Config controls the LLM question source.
type Config struct {
	// MaxTokens is the token budget for one batch.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// LLMSource generates questions through an LLM provider using the
// forced provide_questions tool call.
type LLMSource struct {
	provider llm.Provider
	config   Config
}

// NewLLMSource creates an LLMSource with the given provider and config.
func NewLLMSource(provider llm.Provider, cfg Config) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

// batchOutput is the raw tool-call argument object.
type batchOutput struct {
	Questions []Question `json:"questions"`
}

// Questions generates count questions for the date key.
func (s *LLMSource) Questions(ctx context.Context, dateKey string, count int) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(dateKey, count)},
		},
		Tool:        QuestionsTool,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}

	if err := validateBatch(raw.Questions, count); err != nil {
		return nil, err
	}

	return raw.Questions, nil
}
