package repository

import (
	"context"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/infra"
	"host-pricing/internal/infra/repository/converter"
	sqlc "host-pricing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PricingRuleWriteQueries interface {
	DeletePricingRulesByHost(ctx context.Context, db sqlc.DBTX, hostID uuid.UUID) (int64, error)
	CreatePricingRule(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePricingRuleParams) error
}

type PricingRuleRepository struct {
	queries PricingRuleWriteQueries
}

func NewPricingRuleRepository(queries PricingRuleWriteQueries) *PricingRuleRepository {
	return &PricingRuleRepository{queries: queries}
}

// ReplaceAll deletes the host's rules and inserts the given ones. Positions
// come from the records so the stored order equals the evaluation order.
func (r *PricingRuleRepository) ReplaceAll(ctx context.Context, tx sqlc.DBTX, hostID uuid.UUID, rules []pricing.RuleRecord) error {
	if _, err := r.queries.DeletePricingRulesByHost(ctx, tx, hostID); err != nil {
		return infra.WrapRepoErr("failed to delete pricing rules", err)
	}
	for _, rr := range rules {
		if err := r.queries.CreatePricingRule(ctx, tx, converter.RuleRecordToCreateParams(hostID, rr)); err != nil {
			return infra.WrapRepoErr("failed to create pricing rule", err)
		}
	}
	return nil
}
