package usage_fx

import (
	"go.uber.org/fx"

	"goindia/internal/api/controllers"
	"goindia/internal/repositories"
	"goindia/internal/services"
)

var Module = fx.Provide(
	provideUsageService, provideUsageController)

func provideUsageService(profileRepo repositories.ProfileRepository) services.UsageServiceInterface {
	return services.NewUsageService(profileRepo)
}

func provideUsageController(usageService services.UsageServiceInterface) *controllers.UsageController {
	return controllers.NewUsageController(usageService)
}
