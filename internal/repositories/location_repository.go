package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"goindia/internal/models/db_models"
)

type LocationRepository interface {
	Insert(ctx context.Context, location *db_models.Location) error
	Update(ctx context.Context, location *db_models.Location) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*db_models.Location, error)
	ListByTehsil(ctx context.Context, tehsilID string) ([]db_models.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Insert(ctx context.Context, location *db_models.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) Update(ctx context.Context, location *db_models.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *locationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Location{}, "id = ?", id).Error
}

func (r *locationRepository) FindByID(ctx context.Context, id string) (*db_models.Location, error) {
	var location db_models.Location
	err := r.db.WithContext(ctx).
		Preload("Images").
		First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) ListByTehsil(ctx context.Context, tehsilID string) ([]db_models.Location, error) {
	var locations []db_models.Location
	err := r.db.WithContext(ctx).
		Where("tehsil_id = ?", tehsilID).
		Order("name ASC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
