package converter

import (
	"host-pricing/internal/domain/pricing"
	sqlc "host-pricing/internal/infra/sqlc/generated"
	"host-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func RuleRecordToCreateParams(hostID uuid.UUID, rr pricing.RuleRecord) sqlc.CreatePricingRuleParams {
	return sqlc.CreatePricingRuleParams{
		ID:        rr.ID,
		HostID:    hostID,
		Position:  pgconv.IntToInt32(rr.Position),
		RuleName:  rr.RuleName,
		RuleType:  rr.RuleType,
		Value:     pgconv.DecimalToNumeric(rr.Value),
		StartDate: pgconv.DateToPgtype(rr.StartDate.Time()),
		EndDate:   pgconv.DateToPgtype(rr.EndDate.Time()),
		AppliesTo: rr.AppliesTo,
	}
}

func OverrideRecordToCreateParams(hostID uuid.UUID, ov pricing.OverrideRecord) sqlc.CreateDateOverrideParams {
	return sqlc.CreateDateOverrideParams{
		HostID: hostID,
		Date:   pgconv.DateToPgtype(ov.Date.Time()),
		Price:  pgconv.DecimalToNumeric(ov.Price),
		Notes:  pgconv.StringPtrToPgtype(ov.Notes),
	}
}

func RuleRecordFromRow(row sqlc.PricingRules) (pricing.RuleRecord, error) {
	value, err := pgconv.DecimalFromNumeric(row.Value)
	if err != nil {
		return pricing.RuleRecord{}, err
	}
	start, err := pgconv.DateFromPgtype(row.StartDate)
	if err != nil {
		return pricing.RuleRecord{}, err
	}
	end, err := pgconv.DateFromPgtype(row.EndDate)
	if err != nil {
		return pricing.RuleRecord{}, err
	}
	return pricing.RuleRecord{
		ID:        row.ID,
		HostID:    row.HostID,
		Position:  int(row.Position),
		RuleName:  row.RuleName,
		RuleType:  row.RuleType,
		Value:     value,
		StartDate: pricing.DateOf(start),
		EndDate:   pricing.DateOf(end),
		AppliesTo: row.AppliesTo,
	}, nil
}

func OverrideRecordFromRow(row sqlc.DateOverrides) (pricing.OverrideRecord, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return pricing.OverrideRecord{}, err
	}
	date, err := pgconv.DateFromPgtype(row.Date)
	if err != nil {
		return pricing.OverrideRecord{}, err
	}
	return pricing.OverrideRecord{
		HostID: row.HostID,
		Date:   pricing.DateOf(date),
		Price:  price,
		Notes:  pgconv.StringPtrFromPgtype(row.Notes),
	}, nil
}
