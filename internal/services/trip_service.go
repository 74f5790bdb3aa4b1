package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"goindia/internal/models/db_models"
	"goindia/internal/models/request_models"
	"goindia/internal/models/response_models"
	"goindia/internal/repositories"
	"goindia/pkg/llm"
	"goindia/pkg/utils"
)

type TripServiceInterface interface {
	GenerateItinerary(ctx context.Context, profileID string, request request_models.TripRequest) (*response_models.TripPlanResponse, error)
	ListMyTrips(ctx context.Context, profileID string) ([]response_models.TripPlanResponse, error)
	GetTrip(ctx context.Context, profileID, tripID string) (*response_models.TripPlanResponse, error)
	DeleteTrip(ctx context.Context, profileID, tripID string) error
}

type TripService struct {
	ai       llm.Client
	usage    UsageServiceInterface
	tripRepo repositories.TripRepository
}

func NewTripService(ai llm.Client, usage UsageServiceInterface, tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{ai: ai, usage: usage, tripRepo: tripRepo}
}

// GenerateItinerary is metered: the trip_planner gate is checked before
// the model is called, and the counter advances only after a successful
// generation.
func (s *TripService) GenerateItinerary(ctx context.Context, profileID string, request request_models.TripRequest) (*response_models.TripPlanResponse, error) {
	if strings.TrimSpace(request.Destination) == "" {
		return nil, utils.ErrInvalidInput
	}
	if request.Days < 1 || request.Days > 30 {
		return nil, utils.ErrInvalidInput
	}
	style := defaultString(request.Style, "cultural")
	companions := defaultString(request.Companions, "solo")

	allowed, err := s.usage.CanUseFeature(ctx, profileID, db_models.FeatureTripPlanner)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, utils.ErrQuotaExceeded
	}

	prompt := buildTripPrompt(request.Days, request.Destination, style, companions)

	raw, err := s.ai.Query(ctx, prompt)
	if err != nil {
		return nil, mapAIError(err)
	}

	var itinerary []response_models.DayPlan
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		log.Printf("Failed to parse itinerary JSON: %v", err)
		return nil, utils.ErrMalformedAIResponse
	}
	if len(itinerary) == 0 {
		return nil, utils.ErrMalformedAIResponse
	}
	for i := range itinerary {
		itinerary[i].Date = utils.ItineraryDate(itinerary[i].Day)
	}

	if err := s.usage.IncrementFeatureUsage(ctx, profileID, db_models.FeatureTripPlanner); err != nil {
		return nil, err
	}

	trip := &db_models.TripPlan{
		ProfileID:   parseUUID(profileID),
		Title:       fmt.Sprintf("%d days in %s", request.Days, request.Destination),
		Destination: request.Destination,
		Days:        request.Days,
		TravelStyle: style,
		Companions:  companions,
	}
	if raw, err := json.Marshal(itinerary); err == nil {
		trip.Itinerary = raw
	}
	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return tripToResponse(trip, itinerary), nil
}

func (s *TripService) ListMyTrips(ctx context.Context, profileID string) ([]response_models.TripPlanResponse, error) {
	trips, err := s.tripRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TripPlanResponse, 0, len(trips))
	for i := range trips {
		responses = append(responses, *tripToResponse(&trips[i], nil))
	}
	return responses, nil
}

func (s *TripService) GetTrip(ctx context.Context, profileID, tripID string) (*response_models.TripPlanResponse, error) {
	trip, err := s.findOwnedTrip(ctx, profileID, tripID)
	if err != nil {
		return nil, err
	}
	return tripToResponse(trip, nil), nil
}

func (s *TripService) DeleteTrip(ctx context.Context, profileID, tripID string) error {
	if _, err := s.findOwnedTrip(ctx, profileID, tripID); err != nil {
		return err
	}
	if err := s.tripRepo.Delete(ctx, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) findOwnedTrip(ctx context.Context, profileID, tripID string) (*db_models.TripPlan, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.ProfileID.String() != profileID {
		// Another user's trip is indistinguishable from a missing one.
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func buildTripPrompt(days int, destination, style, companions string) string {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, `You are an expert travel planner for "Go India". Plan a %d-day trip to %s, India, for a %s with a %s travel style.`,
		days, destination, companions, style)
	prompt.WriteString(`
Your response MUST be a valid JSON array of objects. Each object represents a day and must follow this exact structure:
{
  "day": number,
  "title": "A short, catchy title for the day's plan",
  "activities": [
    { "time": "Morning" | "Afternoon" | "Evening", "title": "Name of activity", "description": "Brief description.", "type": "spot" | "hotel" | "food", "google_maps_link": "https://www.google.com/maps/search/?api=1&query=PLACE,CITY" }
  ]
}
Return ONLY the JSON array, no extra text.`)
	return prompt.String()
}

func tripToResponse(trip *db_models.TripPlan, itinerary []response_models.DayPlan) *response_models.TripPlanResponse {
	if itinerary == nil && len(trip.Itinerary) > 0 {
		if err := json.Unmarshal(trip.Itinerary, &itinerary); err != nil {
			log.Printf("Failed to decode stored itinerary %s: %v", trip.ID, err)
		}
	}
	return &response_models.TripPlanResponse{
		ID:          trip.ID.String(),
		Title:       trip.Title,
		Destination: trip.Destination,
		Days:        trip.Days,
		TravelStyle: trip.TravelStyle,
		Companions:  trip.Companions,
		Itinerary:   itinerary,
		CreatedAt:   utils.FormatRFC3339IST(utils.FromUnixSecondsIST(trip.CreatedAt)),
	}
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
