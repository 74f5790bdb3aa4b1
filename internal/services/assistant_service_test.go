package services

import (
	"context"
	"errors"
	"testing"

	"goindia/internal/models/request_models"
	"goindia/pkg/llm"
	"goindia/pkg/utils"
)

func TestAssistantAsk(t *testing.T) {
	t.Parallel()

	ai := &fakeAI{response: "Yes! Autos in Delhi run on meters, but agree on the fare first. 🛺"}
	svc := NewAssistantService(ai)

	reply, err := svc.Ask(context.Background(), "Are auto-rickshaws safe in Delhi?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply != ai.response {
		t.Fatalf("reply = %q", reply)
	}
}

func TestAssistantAskEmptyMessage(t *testing.T) {
	t.Parallel()

	svc := NewAssistantService(&fakeAI{})
	if _, err := svc.Ask(context.Background(), "   "); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestAssistantErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		aiErr   error
		wantErr error
	}{
		{"key_not_configured", llm.ErrKeyNotConfigured, utils.ErrAIKeyNotConfigured},
		{"upstream", &llm.UpstreamError{StatusCode: 401, Message: "No auth credentials found"}, utils.ErrAIUpstream},
		{"empty_completion", llm.ErrEmptyCompletion, utils.ErrMalformedAIResponse},
		{"transport", errors.New("dial tcp: connection refused"), utils.ErrAIUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewAssistantService(&fakeAI{err: tt.aiErr})
			_, err := svc.Ask(context.Background(), "hello")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAssistantUpstreamMessageSurvivesMapping(t *testing.T) {
	t.Parallel()

	svc := NewAssistantService(&fakeAI{err: &llm.UpstreamError{StatusCode: 429, Message: "Rate limit exceeded"}})
	_, err := svc.Ask(context.Background(), "hello")
	if err == nil || !errors.Is(err, utils.ErrAIUpstream) {
		t.Fatalf("error = %v, want wrapped ErrAIUpstream", err)
	}
	if got := err.Error(); got == utils.ErrAIUpstream.Error() {
		t.Fatalf("provider message lost: %q", got)
	}
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	ai := &fakeAI{response: `{"translated_text": "पानी कहाँ मिलेगा?", "pronunciation": "paani kahaan milega?"}`}
	svc := NewTranslateService(ai)

	result, err := svc.Translate(context.Background(), request_models.TranslateRequest{
		Text:       "Where can I get water?",
		SourceLang: "en",
		TargetLang: "hi",
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if result.TranslatedText != "पानी कहाँ मिलेगा?" {
		t.Fatalf("TranslatedText = %q", result.TranslatedText)
	}
	if result.Pronunciation == "" {
		t.Fatal("expected a pronunciation hint")
	}
}

func TestTranslateSameLanguageSkipsModel(t *testing.T) {
	t.Parallel()

	ai := &fakeAI{}
	svc := NewTranslateService(ai)

	result, err := svc.Translate(context.Background(), request_models.TranslateRequest{
		Text:       "Hello",
		SourceLang: "en",
		TargetLang: "en",
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if result.TranslatedText != "Hello" {
		t.Fatalf("TranslatedText = %q", result.TranslatedText)
	}
	if ai.calls != 0 {
		t.Fatalf("model calls = %d, want 0", ai.calls)
	}
}

func TestTranslateUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	svc := NewTranslateService(&fakeAI{})
	_, err := svc.Translate(context.Background(), request_models.TranslateRequest{
		Text:       "Hello",
		SourceLang: "en",
		TargetLang: "fr",
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestEstimateFare(t *testing.T) {
	t.Parallel()

	ai := &fakeAI{response: `{
		"city": "Mumbai", "from": "somewhere else", "to": "elsewhere",
		"distance_km": 8.5, "travel_time": "25-35 mins",
		"fare_estimate_inr": "Rs 100 - Rs 140 (auto), Rs 170 - Rs 220 (taxi)",
		"fare_estimate_usd": "$1.2 - $1.7 (auto), $2 - $2.6 (taxi)",
		"scam_alert": "Drivers at the station quote flat Rs 500; walk to the main road and hail a metered auto.",
		"tips": "Insist on the meter.",
		"alternatives": ["Take the local train to Churchgate"]
	}`}
	svc := NewFareService(ai)

	result, err := svc.EstimateFare(context.Background(), request_models.FareRequest{
		From: "CST Station",
		To:   "Gateway of India",
		City: "Mumbai",
	})
	if err != nil {
		t.Fatalf("EstimateFare() error = %v", err)
	}
	if result.DistanceKm != 8.5 {
		t.Fatalf("DistanceKm = %v", result.DistanceKm)
	}
	// The route echoed back must come from the request, not the model.
	if result.From != "CST Station" || result.To != "Gateway of India" {
		t.Fatalf("route = %q -> %q", result.From, result.To)
	}
	if len(result.Alternatives) != 1 {
		t.Fatalf("Alternatives = %v", result.Alternatives)
	}
}

func TestEstimateFareValidation(t *testing.T) {
	t.Parallel()

	svc := NewFareService(&fakeAI{})
	_, err := svc.EstimateFare(context.Background(), request_models.FareRequest{From: "A", To: "B"})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}
