package response_models

type NutrientScore struct {
	Value float64 `json:"value"`
	Score int     `json:"score"`
}

type FoodScoreResponse struct {
	DishLabel   string                   `json:"dish_label"`
	Score       float64                  `json:"score"` // 0-10, one decimal
	Breakdown   map[string]NutrientScore `json:"breakdown"`
	Explanation string                   `json:"explanation"`
	Suggestions []string                 `json:"suggestions"`
}
