package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"goindia/internal/models/request_models"
	"goindia/internal/models/response_models"
	"goindia/pkg/llm"
	"goindia/pkg/utils"
)

// supportedLangs maps the language codes the app exposes to the names the
// prompt uses.
var supportedLangs = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"ta": "Tamil",
	"bn": "Bengali",
	"mr": "Marathi",
}

type TranslateServiceInterface interface {
	Translate(ctx context.Context, request request_models.TranslateRequest) (*response_models.TranslateResponse, error)
}

// TranslateService is prompt-driven: the model does the translation and
// returns a JSON object with the translated text plus a romanized
// pronunciation hint for non-Latin scripts. Not metered.
type TranslateService struct {
	ai llm.Client
}

func NewTranslateService(ai llm.Client) TranslateServiceInterface {
	return &TranslateService{ai: ai}
}

func (s *TranslateService) Translate(ctx context.Context, request request_models.TranslateRequest) (*response_models.TranslateResponse, error) {
	if strings.TrimSpace(request.Text) == "" {
		return nil, utils.ErrInvalidInput
	}
	source, ok := supportedLangs[request.SourceLang]
	if !ok {
		return nil, utils.ErrInvalidInput
	}
	target, ok := supportedLangs[request.TargetLang]
	if !ok {
		return nil, utils.ErrInvalidInput
	}
	if request.SourceLang == request.TargetLang {
		return &response_models.TranslateResponse{TranslatedText: request.Text}, nil
	}

	prompt := fmt.Sprintf(`Translate the following text from %s to %s for a foreign traveler in India: %q.
Respond with ONLY a valid JSON object in this exact format:
{ "translated_text": "the translation", "pronunciation": "a simple romanized pronunciation, or an empty string if the target uses Latin script" }`,
		source, target, request.Text)

	raw, err := s.ai.Query(ctx, prompt)
	if err != nil {
		return nil, mapAIError(err)
	}

	var result response_models.TranslateResponse
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("Failed to parse translation JSON: %v", err)
		return nil, utils.ErrMalformedAIResponse
	}
	if strings.TrimSpace(result.TranslatedText) == "" {
		return nil, utils.ErrMalformedAIResponse
	}
	return &result, nil
}
