package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TripPlan is a generated itinerary a user chose to keep. Itinerary is
// the day-plan array exactly as returned to the client.
type TripPlan struct {
	BaseModel
	ProfileID   uuid.UUID `gorm:"index"`
	Title       string
	Destination string
	Days        int
	TravelStyle string
	Companions  string
	Itinerary   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	Profile Profile `gorm:"foreignKey:ProfileID"`
}
