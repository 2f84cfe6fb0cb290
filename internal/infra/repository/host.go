package repository

import (
	"context"

	"host-pricing/internal/infra"
	sqlc "host-pricing/internal/infra/sqlc/generated"
	"host-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HostWriteQueries interface {
	UpdateHostBasePrice(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHostBasePriceParams) (int64, error)
}

type HostRepository struct {
	queries HostWriteQueries
}

func NewHostRepository(queries HostWriteQueries) *HostRepository {
	return &HostRepository{queries: queries}
}

func (r *HostRepository) UpdateBasePrice(ctx context.Context, tx sqlc.DBTX, hostID uuid.UUID, price decimal.Decimal) error {
	params := sqlc.UpdateHostBasePriceParams{
		ID:                   hostID,
		DefaultPricePerNight: pgconv.DecimalToNumeric(price),
	}
	affected, err := r.queries.UpdateHostBasePrice(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update host base price", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("host not found", nil, infra.KindNotFound)
	}
	return nil
}
