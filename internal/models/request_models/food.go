package request_models

// FoodScoreRequest carries either a dish photo (base64 JPEG) for the
// vision path or a dish label, plus the client-side nutrition estimates
// the deterministic scorer works from.
type FoodScoreRequest struct {
	DishLabel      string  `json:"dish_label"`
	ImageBase64    string  `json:"image_base64"`
	Calories       float64 `json:"calories"`
	FatG           float64 `json:"fat_g"`
	SodiumMg       float64 `json:"sodium_mg"`
	SugarG         float64 `json:"sugar_g"`
	DetectedMethod string  `json:"detected_method"`
}
