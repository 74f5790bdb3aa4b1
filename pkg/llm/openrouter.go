package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// titleTransport tags outgoing requests so OpenRouter attributes usage to
// the app in its dashboard.
type titleTransport struct {
	base http.RoundTripper
}

func (t titleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Title", appTitle)
	return t.base.RoundTrip(req)
}

const (
	DefaultOpenRouterModel = "qwen/qwen-2.5-72b-chat"

	openRouterBaseURL = "https://openrouter.ai/api/v1"
	appTitle          = "GoIndia Travel App"
)

// OpenRouterClient talks to an OpenAI-compatible chat-completions endpoint.
// The base URL is configurable so deployments can point it either at
// OpenRouter directly or at a same-origin proxy that injects the key.
type OpenRouterClient struct {
	client *openai.Client
	model  string
}

func NewOpenRouterClient(apiKey, baseURL, model string) (*OpenRouterClient, error) {
	if strings.TrimSpace(apiKey) == "" || strings.Contains(apiKey, "YOUR_API_KEY") {
		return nil, ErrKeyNotConfigured
	}
	if baseURL == "" {
		baseURL = openRouterBaseURL
	}
	if model == "" {
		model = DefaultOpenRouterModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(baseURL, "/")
	cfg.HTTPClient = &http.Client{Transport: titleTransport{base: http.DefaultTransport}}

	return &OpenRouterClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

func (c *OpenRouterClient) Query(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})
}

// QueryWithImage carries exactly one inlined JPEG alongside the prompt as a
// data URL, the shape vision-capable chat models expect.
func (c *OpenRouterClient) QueryWithImage(ctx context.Context, prompt, imageBase64 string) (string, error) {
	return c.complete(ctx, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: prompt},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: "data:image/jpeg;base64," + imageBase64,
				},
			},
		},
	})
}

func (c *OpenRouterClient) complete(ctx context.Context, msg openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: []openai.ChatCompletionMessage{msg},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return ExtractPayload(text), nil
}

var _ Client = (*OpenRouterClient)(nil)
