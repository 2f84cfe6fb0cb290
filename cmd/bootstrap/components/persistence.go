package components

import (
	"host-pricing/internal/infra/readstore"
	sqlc "host-pricing/internal/infra/sqlc/generated"
	"host-pricing/internal/infra/uow"
	"host-pricing/internal/pkg/config"
	"host-pricing/internal/usecase/queries"
	"host-pricing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewRetryPolicy,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewPricingReadQueries,
			fx.As(new(readstore.PricingReadQueries)),
		),
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(queries.PricingReadStore)),
		),
	),
)

// Write repositories are created per transaction by the UnitOfWork.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewRetryPolicy(cfg config.Config) uow.RetryPolicy {
	return uow.NewRetryPolicy(cfg.Tx)
}

func NewPricingReadQueries(q *sqlc.Queries) *sqlc.Queries {
	return q
}
