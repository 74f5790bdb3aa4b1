package response_models

type ProfileResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	HomeCountry string `json:"home_country,omitempty"`
	Role        string `json:"role"`
	Plan        string `json:"plan"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Plan  string `json:"plan"`
}

// FeatureUsage reports one metered feature's position against its
// ceiling. Limit -1 means unbounded; Remaining is then also -1.
type FeatureUsage struct {
	Feature   string `json:"feature"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	Unlimited bool   `json:"unlimited"`
}
