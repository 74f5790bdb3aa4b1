package response_models

type WeatherReport struct {
	City        string  `json:"city"`
	TempC       float64 `json:"temp_c"`
	Humidity    int     `json:"humidity"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	AQI         int     `json:"aqi,omitempty"` // 1 (good) .. 5 (very poor)
	FetchedAt   string  `json:"fetched_at"`
}
