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

type FareServiceInterface interface {
	EstimateFare(ctx context.Context, request request_models.FareRequest) (*response_models.FareResult, error)
}

// FareService estimates auto-rickshaw and taxi fares between two points of
// a city. The reference rates (₹12/km auto, ₹20/km taxi) are baked into
// the prompt so estimates stay consistent across calls. Not metered.
type FareService struct {
	ai llm.Client
}

func NewFareService(ai llm.Client) FareServiceInterface {
	return &FareService{ai: ai}
}

func (s *FareService) EstimateFare(ctx context.Context, request request_models.FareRequest) (*response_models.FareResult, error) {
	if strings.TrimSpace(request.From) == "" || strings.TrimSpace(request.To) == "" || strings.TrimSpace(request.City) == "" {
		return nil, utils.ErrInvalidInput
	}

	prompt := buildFarePrompt(request)

	raw, err := s.ai.Query(ctx, prompt)
	if err != nil {
		return nil, mapAIError(err)
	}

	var result response_models.FareResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("Failed to parse fare JSON: %v", err)
		return nil, utils.ErrMalformedAIResponse
	}

	// The model is asked to echo the route back; trust the request over
	// whatever it produced.
	result.City = request.City
	result.From = request.From
	result.To = request.To
	return &result, nil
}

func buildFarePrompt(request request_models.FareRequest) string {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, `You are a local transport expert in %s, India. Estimate the fare for a trip from %q to %q.`,
		request.City, request.From, request.To)
	prompt.WriteString(`
Use these base rates: auto-rickshaw about Rs 12/km, taxi about Rs 20/km, plus typical local minimum fares.
Respond with ONLY a valid JSON object in this exact format:
{
  "city": "the city",
  "from": "the starting point",
  "to": "the destination",
  "distance_km": number,
  "travel_time": "e.g. 20-30 mins",
  "fare_estimate_inr": "e.g. Rs 80 - Rs 120 (auto), Rs 150 - Rs 200 (taxi)",
  "fare_estimate_usd": "e.g. $1 - $1.5 (auto), $2 - $2.5 (taxi)",
  "scam_alert": "one common overcharging trick on this route and how to avoid it",
  "tips": "one practical tip, e.g. insist on the meter or use a ride-hailing app",
  "alternatives": ["cheaper or easier options, e.g. metro or bus routes"]
}`)
	return prompt.String()
}
