package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"goindia/internal/models/db_models"
)

type ProfileRepository interface {
	Insert(ctx context.Context, profile *db_models.Profile) error
	FindByID(ctx context.Context, id string) (*db_models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Profile, error)
	UpdatePlan(ctx context.Context, id string, plan db_models.PlanTier) error
	UpdateFeatureUsage(ctx context.Context, id string, feature db_models.Feature, used int) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Insert(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByID(ctx context.Context, id string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).First(&profile, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdatePlan(ctx context.Context, id string, plan db_models.PlanTier) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("id = ?", id).
		Update("plan", plan).Error
}

// UpdateFeatureUsage writes the new counter value for one feature column.
// Exactly one column is touched per call.
func (r *profileRepository) UpdateFeatureUsage(ctx context.Context, id string, feature db_models.Feature, used int) error {
	column := feature.Column()
	if column == "" {
		return errors.New("unknown feature")
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("id = ?", id).
		Update(column, used).Error
}
