package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Location is a single visitable place. Details holds the rich guide
// sections (opening hours, etiquette, costs, safety, amenities, ...) as
// one JSONB document; its inner shape is owned by the content editors,
// not by the schema.
type Location struct {
	BaseModel
	TehsilID   uuid.UUID `gorm:"index"`
	Name       string    `gorm:"index"`
	Category   string
	ShortIntro string
	ImageURL   string
	Details    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Images []LocationImage `gorm:"foreignKey:LocationID"`
}

type LocationImage struct {
	BaseModel
	LocationID uuid.UUID `gorm:"index"`
	ImageURL   string
	AltText    string
}
