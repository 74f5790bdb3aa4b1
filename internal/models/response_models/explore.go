package response_models

import "encoding/json"

type CityResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	State           string `json:"state"`
	Description     string `json:"description,omitempty"`
	ShortTagline    string `json:"short_tagline,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	PopularityScore int    `json:"popularity_score"`
	SafetyScore     int    `json:"safety_score"`
	BestTimeToVisit string `json:"best_time_to_visit,omitempty"`
	WeatherInfo     string `json:"weather_info,omitempty"`

	Tehsils []TehsilResponse `json:"tehsils,omitempty"`
}

type TehsilResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Category     string `json:"category,omitempty"`
	SafetyRating int    `json:"safety_rating"`
}

type LocationResponse struct {
	ID         string          `json:"id"`
	TehsilID   string          `json:"tehsil_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category,omitempty"`
	ShortIntro string          `json:"short_intro,omitempty"`
	ImageURL   string          `json:"image_url,omitempty"`
	Details    json.RawMessage `json:"details,omitempty"`
	Images     []string        `json:"images,omitempty"`
}

type PhraseResponse struct {
	Category      string `json:"category"`
	En            string `json:"en"`
	Hi            string `json:"hi"`
	Pronunciation string `json:"pronunciation"`
}
