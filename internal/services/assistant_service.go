package services

import (
	"context"
	"fmt"
	"strings"

	"goindia/pkg/llm"
	"goindia/pkg/utils"
)

type AssistantServiceInterface interface {
	Ask(ctx context.Context, message string) (string, error)
}

// AssistantService answers free-form traveler questions. Not metered.
type AssistantService struct {
	ai llm.Client
}

func NewAssistantService(ai llm.Client) AssistantServiceInterface {
	return &AssistantService{ai: ai}
}

func (s *AssistantService) Ask(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", utils.ErrInvalidInput
	}

	prompt := fmt.Sprintf(`You are a friendly and expert travel assistant for "Go India", an app for foreigners visiting India. A user asks: %q. Provide a helpful, concise, and practical answer. Use emojis to make it engaging.`, message)

	reply, err := s.ai.Query(ctx, prompt)
	if err != nil {
		return "", mapAIError(err)
	}
	return reply, nil
}
