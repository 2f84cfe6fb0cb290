package repository

import (
	"context"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/infra"
	"host-pricing/internal/infra/repository/converter"
	sqlc "host-pricing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type DateOverrideWriteQueries interface {
	DeleteDateOverridesByHost(ctx context.Context, db sqlc.DBTX, hostID uuid.UUID) (int64, error)
	CreateDateOverride(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDateOverrideParams) error
}

type DateOverrideRepository struct {
	queries DateOverrideWriteQueries
}

func NewDateOverrideRepository(queries DateOverrideWriteQueries) *DateOverrideRepository {
	return &DateOverrideRepository{queries: queries}
}

func (r *DateOverrideRepository) ReplaceAll(ctx context.Context, tx sqlc.DBTX, hostID uuid.UUID, overrides []pricing.OverrideRecord) error {
	if _, err := r.queries.DeleteDateOverridesByHost(ctx, tx, hostID); err != nil {
		return infra.WrapRepoErr("failed to delete date overrides", err)
	}
	for _, ov := range overrides {
		if err := r.queries.CreateDateOverride(ctx, tx, converter.OverrideRecordToCreateParams(hostID, ov)); err != nil {
			return infra.WrapRepoErr("failed to create date override", err)
		}
	}
	return nil
}
