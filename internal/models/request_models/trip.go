package request_models

type TripRequest struct {
	Days        int    `json:"days" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Style       string `json:"style"`      // cultural | romantic | family | adventure
	Companions  string `json:"companions"` // solo | couple | family | friends
}
