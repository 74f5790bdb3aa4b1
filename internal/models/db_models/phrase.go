package db_models

type Phrase struct {
	BaseModel
	Category      string `gorm:"index"`
	En            string
	Hi            string
	Pronunciation string
	IsAdult       bool `gorm:"default:false"`
}
