package response_models

// Activity and DayPlan mirror the JSON contract embedded in the
// trip-planner prompt; the model is instructed to produce exactly this
// shape.
type Activity struct {
	Time           string `json:"time"` // Morning | Afternoon | Evening
	Title          string `json:"title"`
	Description    string `json:"description"`
	Type           string `json:"type"` // spot | hotel | food
	GoogleMapsLink string `json:"google_maps_link,omitempty"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Date       string     `json:"date,omitempty"`
	Activities []Activity `json:"activities"`
}

type TripPlanResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	TravelStyle string    `json:"travel_style,omitempty"`
	Companions  string    `json:"companions,omitempty"`
	Itinerary   []DayPlan `json:"itinerary"`
	CreatedAt   string    `json:"created_at,omitempty"`
}
