package services

import (
	"context"
	"encoding/json"

	"goindia/internal/models/db_models"
	"goindia/internal/models/request_models"
	"goindia/internal/models/response_models"
	"goindia/internal/repositories"
	"goindia/pkg/utils"
)

type ExploreServiceInterface interface {
	ListCities(ctx context.Context, search string, limit int) ([]response_models.CityResponse, error)
	GetCity(ctx context.Context, cityID string) (*response_models.CityResponse, error)
	ListLocations(ctx context.Context, tehsilID string) ([]response_models.LocationResponse, error)
	GetLocation(ctx context.Context, locationID string) (*response_models.LocationResponse, error)
	ListPhrases(ctx context.Context, category string, includeAdult bool) ([]response_models.PhraseResponse, error)

	CreateCity(ctx context.Context, request request_models.CreateCityRequest) (*response_models.CityResponse, error)
	CreateLocation(ctx context.Context, request request_models.UpsertLocationRequest) (*response_models.LocationResponse, error)
	UpdateLocation(ctx context.Context, locationID string, request request_models.UpsertLocationRequest) (*response_models.LocationResponse, error)
	DeleteLocation(ctx context.Context, locationID string) error
}

// ExploreService serves the destination catalog: cities, their tehsils,
// locations, and the phrasebook. The mutating methods back the admin
// content screens; role enforcement happens at the route level.
type ExploreService struct {
	cityRepo     repositories.CityRepository
	locationRepo repositories.LocationRepository
	phraseRepo   repositories.PhraseRepository
}

func NewExploreService(
	cityRepo repositories.CityRepository,
	locationRepo repositories.LocationRepository,
	phraseRepo repositories.PhraseRepository,
) ExploreServiceInterface {
	return &ExploreService{
		cityRepo:     cityRepo,
		locationRepo: locationRepo,
		phraseRepo:   phraseRepo,
	}
}

func (s *ExploreService) ListCities(ctx context.Context, search string, limit int) ([]response_models.CityResponse, error) {
	cities, err := s.cityRepo.List(ctx, search, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CityResponse, 0, len(cities))
	for i := range cities {
		responses = append(responses, *cityToResponse(&cities[i], nil))
	}
	return responses, nil
}

func (s *ExploreService) GetCity(ctx context.Context, cityID string) (*response_models.CityResponse, error) {
	city, err := s.cityRepo.FindByID(ctx, cityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	tehsils, err := s.cityRepo.ListTehsils(ctx, cityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return cityToResponse(city, tehsils), nil
}

func (s *ExploreService) ListLocations(ctx context.Context, tehsilID string) ([]response_models.LocationResponse, error) {
	locations, err := s.locationRepo.ListByTehsil(ctx, tehsilID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.LocationResponse, 0, len(locations))
	for i := range locations {
		responses = append(responses, *locationToResponse(&locations[i]))
	}
	return responses, nil
}

func (s *ExploreService) GetLocation(ctx context.Context, locationID string) (*response_models.LocationResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if location == nil {
		return nil, utils.ErrLocationNotFound
	}
	return locationToResponse(location), nil
}

func (s *ExploreService) ListPhrases(ctx context.Context, category string, includeAdult bool) ([]response_models.PhraseResponse, error) {
	phrases, err := s.phraseRepo.List(ctx, category, includeAdult)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PhraseResponse, 0, len(phrases))
	for _, phrase := range phrases {
		responses = append(responses, response_models.PhraseResponse{
			Category:      phrase.Category,
			En:            phrase.En,
			Hi:            phrase.Hi,
			Pronunciation: phrase.Pronunciation,
		})
	}
	return responses, nil
}

func (s *ExploreService) CreateCity(ctx context.Context, request request_models.CreateCityRequest) (*response_models.CityResponse, error) {
	existing, err := s.cityRepo.FindByName(ctx, request.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrInvalidInput
	}

	city := &db_models.City{
		Name:            request.Name,
		State:           request.State,
		Description:     request.Description,
		ShortTagline:    request.ShortTagline,
		ThumbnailURL:    request.ThumbnailURL,
		PopularityScore: request.PopularityScore,
		SafetyScore:     request.SafetyScore,
		BestTimeToVisit: request.BestTimeToVisit,
		WeatherInfo:     request.WeatherInfo,
	}
	if err := s.cityRepo.Insert(ctx, city); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return cityToResponse(city, nil), nil
}

func (s *ExploreService) CreateLocation(ctx context.Context, request request_models.UpsertLocationRequest) (*response_models.LocationResponse, error) {
	location := &db_models.Location{
		TehsilID:   parseUUID(request.TehsilID),
		Name:       request.Name,
		Category:   request.Category,
		ShortIntro: request.ShortIntro,
		ImageURL:   request.ImageURL,
	}
	if len(request.Details) > 0 {
		location.Details = []byte(request.Details)
	}
	if err := s.locationRepo.Insert(ctx, location); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return locationToResponse(location), nil
}

func (s *ExploreService) UpdateLocation(ctx context.Context, locationID string, request request_models.UpsertLocationRequest) (*response_models.LocationResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if location == nil {
		return nil, utils.ErrLocationNotFound
	}

	location.TehsilID = parseUUID(request.TehsilID)
	location.Name = request.Name
	location.Category = request.Category
	location.ShortIntro = request.ShortIntro
	location.ImageURL = request.ImageURL
	if len(request.Details) > 0 {
		location.Details = []byte(request.Details)
	}

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return locationToResponse(location), nil
}

func (s *ExploreService) DeleteLocation(ctx context.Context, locationID string) error {
	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if location == nil {
		return utils.ErrLocationNotFound
	}
	if err := s.locationRepo.Delete(ctx, locationID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func cityToResponse(city *db_models.City, tehsils []db_models.Tehsil) *response_models.CityResponse {
	response := &response_models.CityResponse{
		ID:              city.ID.String(),
		Name:            city.Name,
		State:           city.State,
		Description:     city.Description,
		ShortTagline:    city.ShortTagline,
		ThumbnailURL:    city.ThumbnailURL,
		PopularityScore: city.PopularityScore,
		SafetyScore:     city.SafetyScore,
		BestTimeToVisit: city.BestTimeToVisit,
		WeatherInfo:     city.WeatherInfo,
	}
	for _, tehsil := range tehsils {
		response.Tehsils = append(response.Tehsils, response_models.TehsilResponse{
			ID:           tehsil.ID.String(),
			Name:         tehsil.Name,
			Description:  tehsil.Description,
			ThumbnailURL: tehsil.ThumbnailURL,
			Category:     tehsil.Category,
			SafetyRating: tehsil.SafetyRating,
		})
	}
	return response
}

func locationToResponse(location *db_models.Location) *response_models.LocationResponse {
	response := &response_models.LocationResponse{
		ID:         location.ID.String(),
		TehsilID:   location.TehsilID.String(),
		Name:       location.Name,
		Category:   location.Category,
		ShortIntro: location.ShortIntro,
		ImageURL:   location.ImageURL,
	}
	if len(location.Details) > 0 {
		response.Details = json.RawMessage(location.Details)
	}
	for _, image := range location.Images {
		response.Images = append(response.Images, image.ImageURL)
	}
	if response.ImageURL == "" && len(response.Images) > 0 {
		response.ImageURL = response.Images[0]
	}
	return response
}
