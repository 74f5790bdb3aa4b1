package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"goindia/internal/api/controllers"
	"goindia/internal/repositories"
	"goindia/internal/services"
	"goindia/pkg/llm"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(ai llm.Client, usage services.UsageServiceInterface, tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(ai, usage, tripRepo)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
