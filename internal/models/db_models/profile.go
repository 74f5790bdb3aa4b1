package db_models

type PlanTier string

const (
	PlanFree PlanTier = "free"
	PlanPaid PlanTier = "paid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Feature is the closed set of metered capabilities. Using a typed
// constant keeps an unsupported feature name a compile-time error
// instead of a silent zero-limit lookup.
type Feature string

const (
	FeatureFoodScanner Feature = "food_scanner"
	FeatureTripPlanner Feature = "trip_planner"
)

// Column maps a feature to the profile counter column it meters.
func (f Feature) Column() string {
	switch f {
	case FeatureFoodScanner:
		return "food_scanner_used"
	case FeatureTripPlanner:
		return "trip_planner_used"
	}
	return ""
}

// Profile is the per-user row: identity, plan tier, role and the
// per-feature usage counters. Counters only ever go up from the app's
// side; resets happen out of band when a plan period rolls over.
type Profile struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	HomeCountry  string

	Role Role     `gorm:"size:16;default:user;index"`
	Plan PlanTier `gorm:"size:16;default:free"`

	FoodScannerUsed int `gorm:"default:0"`
	TripPlannerUsed int `gorm:"default:0"`

	Trips []TripPlan `gorm:"foreignKey:ProfileID"`
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p *Profile) FeatureUsage(f Feature) int {
	switch f {
	case FeatureFoodScanner:
		return p.FoodScannerUsed
	case FeatureTripPlanner:
		return p.TripPlannerUsed
	}
	return 0
}
