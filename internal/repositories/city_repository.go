package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"goindia/internal/models/db_models"
)

type CityRepository interface {
	Insert(ctx context.Context, city *db_models.City) error
	FindByID(ctx context.Context, id string) (*db_models.City, error)
	FindByName(ctx context.Context, name string) (*db_models.City, error)
	List(ctx context.Context, search string, limit int) ([]db_models.City, error)
	ListTehsils(ctx context.Context, cityID string) ([]db_models.Tehsil, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) Insert(ctx context.Context, city *db_models.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *cityRepository) FindByID(ctx context.Context, id string) (*db_models.City, error) {
	var city db_models.City
	err := r.db.WithContext(ctx).First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) FindByName(ctx context.Context, name string) (*db_models.City, error) {
	var city db_models.City
	err := r.db.WithContext(ctx).First(&city, "lower(name) = lower(?)", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) List(ctx context.Context, search string, limit int) ([]db_models.City, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.db.WithContext(ctx).Order("popularity_score DESC").Limit(limit)
	if search != "" {
		q = q.Where("name ILIKE ? OR state ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var cities []db_models.City
	if err := q.Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) ListTehsils(ctx context.Context, cityID string) ([]db_models.Tehsil, error) {
	var tehsils []db_models.Tehsil
	err := r.db.WithContext(ctx).
		Where("city_id = ?", cityID).
		Order("name ASC").
		Find(&tehsils).Error
	if err != nil {
		return nil, err
	}
	return tehsils, nil
}
