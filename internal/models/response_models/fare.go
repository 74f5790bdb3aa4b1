package response_models

// FareResult is the JSON object the fare prompt instructs the model to
// return.
type FareResult struct {
	City            string   `json:"city"`
	From            string   `json:"from"`
	To              string   `json:"to"`
	DistanceKm      float64  `json:"distance_km"`
	TravelTime      string   `json:"travel_time"`
	FareEstimateINR string   `json:"fare_estimate_inr"`
	FareEstimateUSD string   `json:"fare_estimate_usd"`
	ScamAlert       string   `json:"scam_alert"`
	Tips            string   `json:"tips"`
	Alternatives    []string `json:"alternatives"`
}
