package services

import (
	"context"

	"goindia/internal/models/db_models"
	"goindia/internal/models/response_models"
	"goindia/internal/repositories"
	"goindia/pkg/utils"
)

// UnlimitedUses marks a ceiling with no bound.
const UnlimitedUses = -1

// planLimits is the compiled-in ceiling table: plan tier x feature.
// It is not configurable at runtime.
var planLimits = map[db_models.PlanTier]map[db_models.Feature]int{
	db_models.PlanFree: {
		db_models.FeatureFoodScanner: 10,
		db_models.FeatureTripPlanner: 10,
	},
	db_models.PlanPaid: {
		db_models.FeatureFoodScanner: 300,
		db_models.FeatureTripPlanner: UnlimitedUses,
	},
}

// FeatureLimit returns the ceiling for a plan/feature pair. Unknown pairs
// get a zero ceiling, which fails closed.
func FeatureLimit(plan db_models.PlanTier, feature db_models.Feature) int {
	limits, ok := planLimits[plan]
	if !ok {
		return 0
	}
	limit, ok := limits[feature]
	if !ok {
		return 0
	}
	return limit
}

type UsageServiceInterface interface {
	CanUseFeature(ctx context.Context, profileID string, feature db_models.Feature) (bool, error)
	IncrementFeatureUsage(ctx context.Context, profileID string, feature db_models.Feature) error
	UpgradeToPaid(ctx context.Context, profileID string) (*response_models.ProfileResponse, error)
	GetUsage(ctx context.Context, profileID string) ([]response_models.FeatureUsage, error)
}

// UsageService enforces per-user, per-feature invocation ceilings.
//
// The check and the increment are two separate reads/writes: two
// near-simultaneous invocations by the same user can both pass the check
// before either increments, letting usage overshoot the ceiling by a
// small margin. Accepted trade-off; counters are advisory quota, not
// billing records.
type UsageService struct {
	profileRepo repositories.ProfileRepository
}

func NewUsageService(profileRepo repositories.ProfileRepository) UsageServiceInterface {
	return &UsageService{profileRepo: profileRepo}
}

func (s *UsageService) CanUseFeature(ctx context.Context, profileID string, feature db_models.Feature) (bool, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if profile == nil {
		// No profile loaded: fail closed.
		return false, nil
	}

	return s.allowed(profile, feature), nil
}

func (s *UsageService) allowed(profile *db_models.Profile, feature db_models.Feature) bool {
	if profile.IsAdmin() {
		return true
	}

	limit := FeatureLimit(profile.Plan, feature)
	if limit == UnlimitedUses {
		return true
	}
	return profile.FeatureUsage(feature) < limit
}

// IncrementFeatureUsage bumps the stored counter by one and persists it.
// Callers are expected to have checked CanUseFeature first; the re-check
// here is defensive, and a failed check makes the call a no-op rather
// than an error. The in-hand profile is only considered advanced after
// the write succeeds.
func (s *UsageService) IncrementFeatureUsage(ctx context.Context, profileID string, feature db_models.Feature) error {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if profile == nil || !s.allowed(profile, feature) {
		return nil
	}

	next := profile.FeatureUsage(feature) + 1
	if err := s.profileRepo.UpdateFeatureUsage(ctx, profileID, feature, next); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// UpgradeToPaid flips the plan tier and returns the refreshed profile.
// Payment itself is confirmed by an external process before this is
// called; this only records the outcome.
func (s *UsageService) UpgradeToPaid(ctx context.Context, profileID string) (*response_models.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	if err := s.profileRepo.UpdatePlan(ctx, profileID, db_models.PlanPaid); err != nil {
		return nil, utils.ErrDatabaseError
	}

	refreshed, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil || refreshed == nil {
		return nil, utils.ErrDatabaseError
	}

	return buildProfileResponse(refreshed), nil
}

func (s *UsageService) GetUsage(ctx context.Context, profileID string) ([]response_models.FeatureUsage, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	features := []db_models.Feature{db_models.FeatureFoodScanner, db_models.FeatureTripPlanner}
	usage := make([]response_models.FeatureUsage, 0, len(features))
	for _, feature := range features {
		limit := FeatureLimit(profile.Plan, feature)
		used := profile.FeatureUsage(feature)

		entry := response_models.FeatureUsage{
			Feature: string(feature),
			Used:    used,
			Limit:   limit,
		}
		if limit == UnlimitedUses {
			entry.Unlimited = true
			entry.Remaining = UnlimitedUses
		} else {
			entry.Remaining = max(limit-used, 0)
		}
		usage = append(usage, entry)
	}
	return usage, nil
}

func buildProfileResponse(profile *db_models.Profile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		ID:          profile.ID.String(),
		Name:        profile.Name,
		Email:       profile.Email,
		HomeCountry: profile.HomeCountry,
		Role:        string(profile.Role),
		Plan:        string(profile.Plan),
	}
}
