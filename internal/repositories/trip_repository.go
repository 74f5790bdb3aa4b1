package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"goindia/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.TripPlan) error
	FindByID(ctx context.Context, id string) (*db_models.TripPlan, error)
	ListByProfile(ctx context.Context, profileID string) ([]db_models.TripPlan, error)
	Delete(ctx context.Context, id string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.TripPlan) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindByID(ctx context.Context, id string) (*db_models.TripPlan, error) {
	var trip db_models.TripPlan
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByProfile(ctx context.Context, profileID string) ([]db_models.TripPlan, error) {
	var trips []db_models.TripPlan
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.TripPlan{}, "id = ?", id).Error
}
