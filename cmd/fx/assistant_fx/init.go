package assistant_fx

import (
	"go.uber.org/fx"

	"goindia/internal/api/controllers"
	"goindia/internal/services"
	"goindia/pkg/llm"
)

var Module = fx.Provide(
	provideAssistantService, provideTranslateService, provideFareService, provideAssistantController)

func provideAssistantService(ai llm.Client) services.AssistantServiceInterface {
	return services.NewAssistantService(ai)
}

func provideTranslateService(ai llm.Client) services.TranslateServiceInterface {
	return services.NewTranslateService(ai)
}

func provideFareService(ai llm.Client) services.FareServiceInterface {
	return services.NewFareService(ai)
}

func provideAssistantController(
	assistantService services.AssistantServiceInterface,
	translateService services.TranslateServiceInterface,
	fareService services.FareServiceInterface,
) *controllers.AssistantController {
	return controllers.NewAssistantController(assistantService, translateService, fareService)
}
