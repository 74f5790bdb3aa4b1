package repositories

import (
	"context"

	"gorm.io/gorm"

	"goindia/internal/models/db_models"
)

type PhraseRepository interface {
	List(ctx context.Context, category string, includeAdult bool) ([]db_models.Phrase, error)
}

type phraseRepository struct {
	db *gorm.DB
}

func NewPhraseRepository(db *gorm.DB) PhraseRepository {
	return &phraseRepository{db: db}
}

func (r *phraseRepository) List(ctx context.Context, category string, includeAdult bool) ([]db_models.Phrase, error) {
	q := r.db.WithContext(ctx).Order("category ASC, en ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if !includeAdult {
		q = q.Where("is_adult = false")
	}

	var phrases []db_models.Phrase
	if err := q.Find(&phrases).Error; err != nil {
		return nil, err
	}
	return phrases, nil
}
