package dbfx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"lankatrip/internal/infra"
	"lankatrip/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	provideTripRepo,
	provideAccountRepo,
)

func provideDB(lc fx.Lifecycle) *gorm.DB {
	db := infra.InitPostgresql()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}
