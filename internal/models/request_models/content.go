package request_models

import "encoding/json"

type UpsertLocationRequest struct {
	TehsilID   string          `json:"tehsil_id" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Category   string          `json:"category"`
	ShortIntro string          `json:"short_intro"`
	ImageURL   string          `json:"image_url"`
	Details    json.RawMessage `json:"details"`
}

type CreateCityRequest struct {
	Name            string `json:"name" binding:"required"`
	State           string `json:"state" binding:"required"`
	Description     string `json:"description"`
	ShortTagline    string `json:"short_tagline"`
	ThumbnailURL    string `json:"thumbnail_url"`
	PopularityScore int    `json:"popularity_score"`
	SafetyScore     int    `json:"safety_score"`
	BestTimeToVisit string `json:"best_time_to_visit"`
	WeatherInfo     string `json:"weather_info"`
}
