package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"goindia/internal/models/db_models"
	"goindia/internal/models/request_models"
	"goindia/pkg/utils"
)

const sampleAdvice = `{"explanation": "High in oil and sodium; fine as an occasional treat.", "suggestions": ["Share the portion.", "Pair with a fresh salad instead of extra chutney."]}`

func TestScoreDish(t *testing.T) {
	t.Parallel()

	profile := testProfile(db_models.PlanFree, db_models.RoleUser, 2, 0)
	profileRepo := newFakeProfileRepo(profile)
	ai := &fakeAI{response: sampleAdvice}
	svc := NewFoodService(ai, NewUsageService(profileRepo))

	result, err := svc.ScoreDish(context.Background(), profile.ID.String(), request_models.FoodScoreRequest{
		DishLabel: "Samosa",
		Calories:  300,
		FatG:      17,
		SodiumMg:  550,
		SugarG:    3,
	})
	if err != nil {
		t.Fatalf("ScoreDish() error = %v", err)
	}

	// calories 300 -> 6, fat 17 -> 6, sodium 550 -> 5, sugar 3 -> 8;
	// mean 6.25 rounds to 6.3.
	if result.Score != 6.3 {
		t.Fatalf("Score = %v, want 6.3", result.Score)
	}
	if result.Breakdown["sodium"].Score != 5 {
		t.Fatalf("sodium subscore = %d, want 5", result.Breakdown["sodium"].Score)
	}
	if result.Explanation == "" || len(result.Suggestions) != 2 {
		t.Fatalf("advice not carried through: %+v", result)
	}
	if profile.FoodScannerUsed != 3 {
		t.Fatalf("FoodScannerUsed = %d, want 3", profile.FoodScannerUsed)
	}
	if ai.imageCalls != 0 {
		t.Fatalf("imageCalls = %d, want 0 for text path", ai.imageCalls)
	}
	if !strings.Contains(ai.lastPrompt, "Samosa") {
		t.Fatal("prompt missing dish label")
	}
}

func TestScoreDishVisionPath(t *testing.T) {
	t.Parallel()

	profile := testProfile(db_models.PlanFree, db_models.RoleUser, 0, 0)
	ai := &fakeAI{response: sampleAdvice}
	svc := NewFoodService(ai, NewUsageService(newFakeProfileRepo(profile)))

	result, err := svc.ScoreDish(context.Background(), profile.ID.String(), request_models.FoodScoreRequest{
		ImageBase64: "aGVsbG8=",
		Calories:    200,
	})
	if err != nil {
		t.Fatalf("ScoreDish() error = %v", err)
	}
	if ai.imageCalls != 1 {
		t.Fatalf("imageCalls = %d, want 1", ai.imageCalls)
	}
	if ai.lastImage != "aGVsbG8=" {
		t.Fatalf("lastImage = %q", ai.lastImage)
	}
	if result.DishLabel != "Unknown dish" {
		t.Fatalf("DishLabel = %q, want fallback label", result.DishLabel)
	}
}

func TestScoreDishQuotaExceeded(t *testing.T) {
	t.Parallel()

	profile := testProfile(db_models.PlanFree, db_models.RoleUser, 10, 0)
	ai := &fakeAI{response: sampleAdvice}
	svc := NewFoodService(ai, NewUsageService(newFakeProfileRepo(profile)))

	_, err := svc.ScoreDish(context.Background(), profile.ID.String(), request_models.FoodScoreRequest{DishLabel: "Dosa"})
	if !errors.Is(err, utils.ErrQuotaExceeded) {
		t.Fatalf("error = %v, want ErrQuotaExceeded", err)
	}
	if ai.calls != 0 {
		t.Fatalf("model called %d times behind a closed gate, want 0", ai.calls)
	}
}

func TestScoreDishRequiresLabelOrImage(t *testing.T) {
	t.Parallel()

	profile := testProfile(db_models.PlanFree, db_models.RoleUser, 0, 0)
	svc := NewFoodService(&fakeAI{}, NewUsageService(newFakeProfileRepo(profile)))

	if _, err := svc.ScoreDish(context.Background(), profile.ID.String(), request_models.FoodScoreRequest{}); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestScoreDishMalformedAdviceDoesNotMeter(t *testing.T) {
	t.Parallel()

	profile := testProfile(db_models.PlanFree, db_models.RoleUser, 5, 0)
	svc := NewFoodService(&fakeAI{response: "eat less fried food"}, NewUsageService(newFakeProfileRepo(profile)))

	_, err := svc.ScoreDish(context.Background(), profile.ID.String(), request_models.FoodScoreRequest{DishLabel: "Jalebi"})
	if !errors.Is(err, utils.ErrMalformedAIResponse) {
		t.Fatalf("error = %v, want ErrMalformedAIResponse", err)
	}
	if profile.FoodScannerUsed != 5 {
		t.Fatalf("FoodScannerUsed = %d, want 5", profile.FoodScannerUsed)
	}
}

func TestNutrientSubscores(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score func(float64) int
		value float64
		want  int
	}{
		{"calories_light", scoreCalories, 180, 9},
		{"calories_heavy", scoreCalories, 900, 2},
		{"fat_boundary", scoreFat, 12, 7},
		{"sodium_high", scoreSodium, 1200, 2},
		{"sugar_dessert", scoreSugar, 40, 2},
		{"sugar_low", scoreSugar, 4, 8},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.score(tt.value); got != tt.want {
				t.Fatalf("score(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}
