package food_fx

import (
	"go.uber.org/fx"

	"goindia/internal/api/controllers"
	"goindia/internal/services"
	"goindia/pkg/llm"
)

var Module = fx.Provide(
	provideFoodService, provideFoodController)

func provideFoodService(ai llm.Client, usage services.UsageServiceInterface) services.FoodServiceInterface {
	return services.NewFoodService(ai, usage)
}

func provideFoodController(foodService services.FoodServiceInterface) *controllers.FoodController {
	return controllers.NewFoodController(foodService)
}
