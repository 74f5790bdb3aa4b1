package services

import (
	"context"
	"errors"
	"testing"

	"goindia/internal/models/db_models"
	"goindia/internal/models/request_models"
	"goindia/pkg/utils"
)

type fakeAI struct {
	response   string
	err        error
	calls      int
	imageCalls int
	lastPrompt string
	lastImage  string
}

func (f *fakeAI) Query(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeAI) QueryWithImage(_ context.Context, prompt, imageBase64 string) (string, error) {
	f.calls++
	f.imageCalls++
	f.lastPrompt = prompt
	f.lastImage = imageBase64
	return f.response, f.err
}

type fakeTripRepo struct {
	trips   map[string]*db_models.TripPlan
	inserts int
	deletes int
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: map[string]*db_models.TripPlan{}}
}

func (r *fakeTripRepo) Insert(_ context.Context, trip *db_models.TripPlan) error {
	r.inserts++
	r.trips[trip.ID.String()] = trip
	return nil
}

func (r *fakeTripRepo) FindByID(_ context.Context, id string) (*db_models.TripPlan, error) {
	return r.trips[id], nil
}

func (r *fakeTripRepo) ListByProfile(_ context.Context, profileID string) ([]db_models.TripPlan, error) {
	var out []db_models.TripPlan
	for _, trip := range r.trips {
		if trip.ProfileID.String() == profileID {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (r *fakeTripRepo) Delete(_ context.Context, id string) error {
	r.deletes++
	delete(r.trips, id)
	return nil
}

const sampleItinerary = `[
  {"day": 1, "title": "Old Delhi Heritage", "activities": [
    {"time": "Morning", "title": "Red Fort", "description": "Mughal fort complex.", "type": "spot", "google_maps_link": "https://www.google.com/maps/search/?api=1&query=Red+Fort,Delhi"},
    {"time": "Evening", "title": "Karim's", "description": "Legendary kebabs.", "type": "food", "google_maps_link": "https://www.google.com/maps/search/?api=1&query=Karims,Delhi"}
  ]},
  {"day": 2, "title": "New Delhi Highlights", "activities": [
    {"time": "Morning", "title": "Humayun's Tomb", "description": "Garden tomb.", "type": "spot", "google_maps_link": "https://www.google.com/maps/search/?api=1&query=Humayuns+Tomb,Delhi"}
  ]}
]`

func TestGenerateItinerary(t *testing.T) {
	t.Parallel()

	profile := testProfile(db_models.PlanFree, db_models.RoleUser, 0, 3)
	profileRepo := newFakeProfileRepo(profile)
	tripRepo := newFakeTripRepo()
	ai := &fakeAI{response: sampleItinerary}
	svc := NewTripService(ai, NewUsageService(profileRepo), tripRepo)

	trip, err := svc.GenerateItinerary(context.Background(), profile.ID.String(), request_models.TripRequest{
		Destination: "Delhi",
		Days:        2,
	})
	if err != nil {
		t.Fatalf("GenerateItinerary() error = %v", err)
	}

	if len(trip.Itinerary) != 2 {
		t.Fatalf("len(Itinerary) = %d, want 2", len(trip.Itinerary))
	}
	if trip.Itinerary[0].Date == "" || trip.Itinerary[1].Date == "" {
		t.Fatal("itinerary days missing computed dates")
	}
	if trip.TravelStyle != "cultural" || trip.Companions != "solo" {
		t.Fatalf("defaults not applied: style=%q companions=%q", trip.TravelStyle, trip.Companions)
	}
	if tripRepo.inserts != 1 {
		t.Fatalf("inserts = %d, want 1", tripRepo.inserts)
	}
	if profile.TripPlannerUsed != 4 {
		t.Fatalf("TripPlannerUsed = %d, want 4 (exactly one increment)", profile.TripPlannerUsed)
	}
}

func TestGenerateItineraryConsumesLastFreeRun(t *testing.T) {
	t.Parallel()

	profile := testProfile(db_models.PlanFree, db_models.RoleUser, 0, 9)
	profileRepo := newFakeProfileRepo(profile)
	usage := NewUsageService(profileRepo)
	svc := NewTripService(&fakeAI{response: sampleItinerary}, usage, newFakeTripRepo())
	ctx := context.Background()
	id := profile.ID.String()

	if _, err := svc.GenerateItinerary(ctx, id, request_models.TripRequest{Destination: "Varanasi", Days: 2}); err != nil {
		t.Fatalf("GenerateItinerary() on last free run error = %v", err)
	}
	if profile.TripPlannerUsed != 10 {
		t.Fatalf("TripPlannerUsed = %d, want 10", profile.TripPlannerUsed)
	}

	allowed, err := usage.CanUseFeature(ctx, id, db_models.FeatureTripPlanner)
	if err != nil {
		t.Fatalf("CanUseFeature() error = %v", err)
	}
	if allowed {
		t.Fatal("gate still open after the last free run")
	}

	if _, err := svc.GenerateItinerary(ctx, id, request_models.TripRequest{Destination: "Varanasi", Days: 2}); !errors.Is(err, utils.ErrQuotaExceeded) {
		t.Fatalf("GenerateItinerary() past the ceiling error = %v, want ErrQuotaExceeded", err)
	}
}

func TestGenerateItineraryQuotaExceeded(t *testing.T) {
	t.Parallel()

	profile := testProfile(db_models.PlanFree, db_models.RoleUser, 0, 10)
	ai := &fakeAI{response: sampleItinerary}
	svc := NewTripService(ai, NewUsageService(newFakeProfileRepo(profile)), newFakeTripRepo())

	_, err := svc.GenerateItinerary(context.Background(), profile.ID.String(), request_models.TripRequest{
		Destination: "Jaipur",
		Days:        3,
	})
	if !errors.Is(err, utils.ErrQuotaExceeded) {
		t.Fatalf("error = %v, want ErrQuotaExceeded", err)
	}
	if ai.calls != 0 {
		t.Fatalf("model called %d times behind a closed gate, want 0", ai.calls)
	}
}

func TestGenerateItineraryMalformedResponse(t *testing.T) {
	t.Parallel()

	profile := testProfile(db_models.PlanFree, db_models.RoleUser, 0, 3)
	profileRepo := newFakeProfileRepo(profile)
	tripRepo := newFakeTripRepo()
	svc := NewTripService(&fakeAI{response: "Sure! Here is your trip plan in prose form."}, NewUsageService(profileRepo), tripRepo)

	_, err := svc.GenerateItinerary(context.Background(), profile.ID.String(), request_models.TripRequest{
		Destination: "Goa",
		Days:        4,
	})
	if !errors.Is(err, utils.ErrMalformedAIResponse) {
		t.Fatalf("error = %v, want ErrMalformedAIResponse", err)
	}
	if profile.TripPlannerUsed != 3 {
		t.Fatalf("TripPlannerUsed = %d, want 3 (failed run must not meter)", profile.TripPlannerUsed)
	}
	if tripRepo.inserts != 0 {
		t.Fatalf("inserts = %d, want 0", tripRepo.inserts)
	}
}

func TestGenerateItineraryValidation(t *testing.T) {
	t.Parallel()

	profile := testProfile(db_models.PlanFree, db_models.RoleUser, 0, 0)
	svc := NewTripService(&fakeAI{}, NewUsageService(newFakeProfileRepo(profile)), newFakeTripRepo())

	tests := []struct {
		name    string
		request request_models.TripRequest
	}{
		{"empty_destination", request_models.TripRequest{Days: 3}},
		{"zero_days", request_models.TripRequest{Destination: "Delhi"}},
		{"too_many_days", request_models.TripRequest{Destination: "Delhi", Days: 31}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := svc.GenerateItinerary(context.Background(), profile.ID.String(), tt.request); !errors.Is(err, utils.ErrInvalidInput) {
				t.Fatalf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestGetTripOwnership(t *testing.T) {
	t.Parallel()

	owner := testProfile(db_models.PlanFree, db_models.RoleUser, 0, 0)
	stranger := testProfile(db_models.PlanFree, db_models.RoleUser, 0, 0)
	profileRepo := newFakeProfileRepo(owner, stranger)
	tripRepo := newFakeTripRepo()
	svc := NewTripService(&fakeAI{response: sampleItinerary}, NewUsageService(profileRepo), tripRepo)
	ctx := context.Background()

	created, err := svc.GenerateItinerary(ctx, owner.ID.String(), request_models.TripRequest{Destination: "Agra", Days: 1})
	if err != nil {
		t.Fatalf("GenerateItinerary() error = %v", err)
	}

	if _, err := svc.GetTrip(ctx, owner.ID.String(), created.ID); err != nil {
		t.Fatalf("owner GetTrip() error = %v", err)
	}

	if _, err := svc.GetTrip(ctx, stranger.ID.String(), created.ID); !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("stranger GetTrip() error = %v, want ErrTripNotFound", err)
	}

	if err := svc.DeleteTrip(ctx, stranger.ID.String(), created.ID); !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("stranger DeleteTrip() error = %v, want ErrTripNotFound", err)
	}
	if tripRepo.deletes != 0 {
		t.Fatalf("deletes = %d, want 0", tripRepo.deletes)
	}

	if err := svc.DeleteTrip(ctx, owner.ID.String(), created.ID); err != nil {
		t.Fatalf("owner DeleteTrip() error = %v", err)
	}
}
