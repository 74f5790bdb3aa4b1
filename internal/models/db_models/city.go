package db_models

import "github.com/google/uuid"

type City struct {
	BaseModel
	Name            string `gorm:"index"`
	State           string
	Description     string
	ShortTagline    string
	ThumbnailURL    string
	PopularityScore int `gorm:"default:0;index"`
	SafetyScore     int `gorm:"default:0"`
	BestTimeToVisit string
	WeatherInfo     string

	Tehsils []Tehsil `gorm:"foreignKey:CityID"`
}

// Tehsil is an administrative subdivision of a city; locations hang off it.
type Tehsil struct {
	BaseModel
	CityID       uuid.UUID `gorm:"index"`
	Name         string
	Description  string
	ThumbnailURL string
	Category     string
	SafetyRating int `gorm:"default:0"`

	Locations []Location `gorm:"foreignKey:TehsilID"`
}
