package services

import (
	"context"
	"log"
	"time"

	"goindia/internal/models/db_models"
	"goindia/internal/models/request_models"
	"goindia/internal/models/response_models"
	"goindia/internal/repositories"
	"goindia/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, profileID string) (*response_models.ProfileResponse, error)
}

type AccountService struct {
	profileRepo repositories.ProfileRepository
}

func NewAccountService(profileRepo repositories.ProfileRepository) AccountServiceInterface {
	return &AccountService{profileRepo: profileRepo}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.profileRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	profile := &db_models.Profile{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		HomeCountry:  request.HomeCountry,
		Role:         db_models.RoleUser,
		Plan:         db_models.PlanFree,
	}

	if err := a.profileRepo.Insert(ctx, profile); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	startTime := time.Now()

	profile, err := a.profileRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(profile.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(profile.ID, string(profile.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	log.Printf("Login for %s took %s", profile.ID, time.Since(startTime))

	return &response_models.LoginResponse{
		Token: token,
		Plan:  string(profile.Plan),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, profileID string) (*response_models.ProfileResponse, error) {
	profile, err := a.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return buildProfileResponse(profile), nil
}
