package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiClient is the direct Google path. Generation settings mirror the
// ones the trip-planner has always used: creative but bounded output.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" || strings.Contains(apiKey, "YOUR_API_KEY") {
		return nil, ErrKeyNotConfigured
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Query(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, genai.Text(prompt))
}

func (c *GeminiClient) QueryWithImage(ctx context.Context, prompt, imageBase64 string) (string, error) {
	// Tolerate callers that pass a full data URL instead of bare base64.
	if i := strings.Index(imageBase64, ","); i != -1 && strings.HasPrefix(imageBase64, "data:") {
		imageBase64 = imageBase64[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return "", fmt.Errorf("invalid base64 image: %w", err)
	}
	return c.generate(ctx, genai.Text(prompt), genai.ImageData("jpeg", data))
}

func (c *GeminiClient) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SetTopK(1)
	m.SetTopP(1)
	m.SetMaxOutputTokens(8192)

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return "", &UpstreamError{StatusCode: gerr.Code, Message: gerr.Message}
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// A safety-filter block arrives as a candidate with no parts.
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return ExtractPayload(text), nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

var _ Client = (*GeminiClient)(nil)
