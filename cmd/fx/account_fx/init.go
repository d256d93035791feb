package accountfx

import (
	"go.uber.org/fx"

	"lankatrip/internal/repositories"
	"lankatrip/internal/services"
)

var Module = fx.Provide(provideAccountService)

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}
