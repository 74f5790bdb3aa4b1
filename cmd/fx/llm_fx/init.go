package llm_fx

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"goindia/pkg/llm"
)

var Module = fx.Provide(
	ProvideLLMClient)

// LLMConfig holds configuration for the model gateway client.
type LLMConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// ProvideLLMClient creates the model client based on environment variables.
// OpenRouter is the default; Gemini is the direct-provider alternative.
func ProvideLLMClient() (llm.Client, error) {
	config := getLLMConfig()

	log.Printf("Initializing %s client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openrouter":
		return llm.NewOpenRouterClient(config.APIKey, config.BaseURL, config.Model)
	case "gemini":
		client, err := llm.NewGeminiClient(context.Background(), config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s. Use 'openrouter' or 'gemini'", config.Provider)
	}
}

func getLLMConfig() LLMConfig {
	provider := getEnvWithDefault("LLM_PROVIDER", "openrouter")

	var apiKey, baseURL, model string

	switch strings.ToLower(provider) {
	case "openrouter":
		apiKey = os.Getenv("OPENROUTER_API_KEY")
		baseURL = os.Getenv("OPENROUTER_BASE_URL")
		model = getEnvWithDefault("OPENROUTER_MODEL", llm.DefaultOpenRouterModel)
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", llm.DefaultGeminiModel)
	}

	return LLMConfig{
		Provider: provider,
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
