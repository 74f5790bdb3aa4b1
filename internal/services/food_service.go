package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"goindia/internal/models/db_models"
	"goindia/internal/models/request_models"
	"goindia/internal/models/response_models"
	"goindia/pkg/llm"
	"goindia/pkg/utils"
)

type FoodServiceInterface interface {
	ScoreDish(ctx context.Context, profileID string, request request_models.FoodScoreRequest) (*response_models.FoodScoreResponse, error)
}

// FoodService computes a deterministic 0-10 health score from nutrition
// estimates and asks the model only for the human-facing explanation.
// The score must not depend on model output.
type FoodService struct {
	ai    llm.Client
	usage UsageServiceInterface
}

func NewFoodService(ai llm.Client, usage UsageServiceInterface) FoodServiceInterface {
	return &FoodService{ai: ai, usage: usage}
}

func (s *FoodService) ScoreDish(ctx context.Context, profileID string, request request_models.FoodScoreRequest) (*response_models.FoodScoreResponse, error) {
	if strings.TrimSpace(request.DishLabel) == "" && request.ImageBase64 == "" {
		return nil, utils.ErrInvalidInput
	}

	allowed, err := s.usage.CanUseFeature(ctx, profileID, db_models.FeatureFoodScanner)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, utils.ErrQuotaExceeded
	}

	breakdown := scoreBreakdown(request)
	overall := overallScore(breakdown)

	prompt := buildFoodPrompt(request)

	var raw string
	if request.ImageBase64 != "" {
		raw, err = s.ai.QueryWithImage(ctx, prompt, request.ImageBase64)
	} else {
		raw, err = s.ai.Query(ctx, prompt)
	}
	if err != nil {
		return nil, mapAIError(err)
	}

	var advice struct {
		Explanation string   `json:"explanation"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &advice); err != nil {
		log.Printf("Failed to parse food advice JSON: %v", err)
		return nil, utils.ErrMalformedAIResponse
	}

	if err := s.usage.IncrementFeatureUsage(ctx, profileID, db_models.FeatureFoodScanner); err != nil {
		return nil, err
	}

	return &response_models.FoodScoreResponse{
		DishLabel:   defaultString(request.DishLabel, "Unknown dish"),
		Score:       overall,
		Breakdown:   breakdown,
		Explanation: advice.Explanation,
		Suggestions: advice.Suggestions,
	}, nil
}

func buildFoodPrompt(request request_models.FoodScoreRequest) string {
	var prompt strings.Builder
	prompt.WriteString("SYSTEM: You are a friendly nutrition advisor. Given a dish name and nutrition estimates, produce a user-facing explanation and tips. Return ONLY valid JSON.\n")
	fmt.Fprintf(&prompt, "USER: Dish: %q, calories: %.0f, fat_g: %.0f, sodium_mg: %.0f, sugar_g: %.0f, detected_method: %q.\n",
		defaultString(request.DishLabel, "the dish in the photo"),
		request.Calories, request.FatG, request.SodiumMg, request.SugarG,
		defaultString(request.DetectedMethod, "unknown"))
	prompt.WriteString(`JSON format: { "explanation": "A short 1-line health summary.", "suggestions": ["A simple, actionable suggestion.", "Another suggestion."] }`)
	return prompt.String()
}

// Stepped subscores. Thresholds are tuned for single-serving Indian
// street and restaurant dishes.
func scoreCalories(v float64) int {
	switch {
	case v <= 250:
		return 9
	case v <= 450:
		return 6
	case v <= 700:
		return 4
	default:
		return 2
	}
}

func scoreFat(v float64) int {
	switch {
	case v <= 5:
		return 9
	case v <= 12:
		return 7
	case v <= 25:
		return 6
	default:
		return 3
	}
}

func scoreSodium(v float64) int {
	switch {
	case v <= 200:
		return 9
	case v <= 500:
		return 7
	case v <= 1000:
		return 5
	default:
		return 2
	}
}

func scoreSugar(v float64) int {
	switch {
	case v <= 5:
		return 8
	case v <= 15:
		return 6
	case v <= 30:
		return 4
	default:
		return 2
	}
}

func scoreBreakdown(request request_models.FoodScoreRequest) map[string]response_models.NutrientScore {
	return map[string]response_models.NutrientScore{
		"calories": {Value: request.Calories, Score: scoreCalories(request.Calories)},
		"fat":      {Value: request.FatG, Score: scoreFat(request.FatG)},
		"sodium":   {Value: request.SodiumMg, Score: scoreSodium(request.SodiumMg)},
		"sugar":    {Value: request.SugarG, Score: scoreSugar(request.SugarG)},
	}
}

func overallScore(breakdown map[string]response_models.NutrientScore) float64 {
	if len(breakdown) == 0 {
		return 0
	}
	var sum int
	for _, entry := range breakdown {
		sum += entry.Score
	}
	mean := float64(sum) / float64(len(breakdown))
	return math.Round(mean*10) / 10
}
