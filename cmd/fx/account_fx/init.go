package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"goindia/internal/api/controllers"
	"goindia/internal/repositories"
	"goindia/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideAccountService, provideAccountController)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideAccountService(profileRepo repositories.ProfileRepository) services.AccountServiceInterface {
	return services.NewAccountService(profileRepo)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
