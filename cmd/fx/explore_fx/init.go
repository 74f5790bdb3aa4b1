package explore_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"goindia/internal/api/controllers"
	"goindia/internal/repositories"
	"goindia/internal/services"
)

var Module = fx.Provide(
	provideCityRepo, provideLocationRepo, providePhraseRepo,
	provideExploreService, provideWeatherService,
	provideExploreController, provideAdminController)

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}

func provideLocationRepo(db *gorm.DB) repositories.LocationRepository {
	return repositories.NewLocationRepository(db)
}

func providePhraseRepo(db *gorm.DB) repositories.PhraseRepository {
	return repositories.NewPhraseRepository(db)
}

func provideExploreService(
	cityRepo repositories.CityRepository,
	locationRepo repositories.LocationRepository,
	phraseRepo repositories.PhraseRepository,
) services.ExploreServiceInterface {
	return services.NewExploreService(cityRepo, locationRepo, phraseRepo)
}

func provideWeatherService() services.WeatherServiceInterface {
	return services.NewWeatherService()
}

func provideExploreController(
	exploreService services.ExploreServiceInterface,
	weatherService services.WeatherServiceInterface,
) *controllers.ExploreController {
	return controllers.NewExploreController(exploreService, weatherService)
}

func provideAdminController(exploreService services.ExploreServiceInterface) *controllers.AdminController {
	return controllers.NewAdminController(exploreService)
}
