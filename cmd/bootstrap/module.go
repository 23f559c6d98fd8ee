package bootstrap

import (
	"payment-intention-service/cmd/bootstrap/components"
	"payment-intention-service/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// Module wires the whole service; tests swap ConfigModule and DBModule for their own.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	MetricsModule,
	components.PersistenceModule,
	components.UserCacheOption,
	components.UseCaseModule,
	components.HandlerModule,
)
