package readstore

import (
	"context"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/infra"
	"host-pricing/internal/infra/repository/converter"
	sqlc "host-pricing/internal/infra/sqlc/generated"
	"host-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PricingReadQueries interface {
	GetHostPricing(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetHostPricingRow, error)
	ListPricingRulesByHost(ctx context.Context, db sqlc.DBTX, hostID uuid.UUID) ([]sqlc.PricingRules, error)
	ListDateOverridesByHost(ctx context.Context, db sqlc.DBTX, hostID uuid.UUID) ([]sqlc.DateOverrides, error)
}

type PricingReadStore struct {
	queries PricingReadQueries
}

func NewPricingReadStore(queries PricingReadQueries) *PricingReadStore {
	return &PricingReadStore{queries: queries}
}

// Load reads the host's base price, ordered rules and overrides through db,
// which should be a read-only transaction.
func (r *PricingReadStore) Load(ctx context.Context, db sqlc.DBTX, hostID uuid.UUID) (*pricing.Records, error) {
	host, err := r.queries.GetHostPricing(ctx, db, hostID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("host not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get host pricing", err)
	}
	basePrice, err := pgconv.DecimalFromNumeric(host.DefaultPricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid host base price", err)
	}

	ruleRows, err := r.queries.ListPricingRulesByHost(ctx, db, hostID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	overrideRows, err := r.queries.ListDateOverridesByHost(ctx, db, hostID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list date overrides", err)
	}

	rec := &pricing.Records{
		HostID:               host.ID,
		DefaultPricePerNight: basePrice,
		Rules:                make([]pricing.RuleRecord, 0, len(ruleRows)),
		Overrides:            make([]pricing.OverrideRecord, 0, len(overrideRows)),
	}
	for _, row := range ruleRows {
		rr, convErr := converter.RuleRecordFromRow(row)
		if convErr != nil {
			return nil, infra.WrapRepoErr("invalid pricing rule row", convErr)
		}
		rec.Rules = append(rec.Rules, rr)
	}
	for _, row := range overrideRows {
		ov, convErr := converter.OverrideRecordFromRow(row)
		if convErr != nil {
			return nil, infra.WrapRepoErr("invalid date override row", convErr)
		}
		rec.Overrides = append(rec.Overrides, ov)
	}
	return rec, nil
}
