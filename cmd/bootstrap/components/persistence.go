package components

import (
	"log/slog"

	"payment-intention-service/internal/infra/cache"
	"payment-intention-service/internal/infra/memory"
	"payment-intention-service/internal/infra/readstore"
	"payment-intention-service/internal/infra/repository"
	"payment-intention-service/internal/infra/uow"
	"payment-intention-service/internal/pkg/config"
	"payment-intention-service/internal/usecase/queries"
	"payment-intention-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// UserCacheOption must be applied at the application root so every consumer sees the cached directory.
var UserCacheOption = fx.Decorate(
	DecorateUserDirectory,
)

type Persistence struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Users      shared.UserDirectory
	ReadStore  queries.PaymentIntentionReadStore
}

// NewPersistence binds the storage ports to the adapter selected by STORAGE_DRIVER.
func NewPersistence(cfg config.Config, pool *pgxpool.Pool) Persistence {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		store := memory.NewStore(cfg.Storage.MemoryUsers...)
		return Persistence{
			UnitOfWork: store,
			Users:      store,
			ReadStore:  store,
		}
	}

	return Persistence{
		UnitOfWork: uow.NewPostgresUoW(pool),
		Users:      repository.NewUserDirectory(pool),
		ReadStore:  readstore.NewPaymentIntentionReadStore(pool),
	}
}

// DecorateUserDirectory puts the Redis cache in front of the directory when a client is configured.
func DecorateUserDirectory(users shared.UserDirectory, client *redis.Client, cfg config.Config, logger *slog.Logger) shared.UserDirectory {
	if client == nil {
		return users
	}
	return cache.NewUserDirectory(users, client, cfg.Redis.UserTTL, logger)
}
