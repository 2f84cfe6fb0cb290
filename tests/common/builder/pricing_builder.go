//go:build unit || e2e

package builder

import (
	"time"

	"host-pricing/internal/domain/pricing"
	reqdto "host-pricing/internal/handler/dto/request"
	sqlc "host-pricing/internal/infra/sqlc/generated"
	"host-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RuleBuilder struct {
	ID        uuid.UUID
	Name      string
	Type      pricing.RuleType
	Value     decimal.Decimal
	StartDate pricing.Date
	EndDate   pricing.Date
	AppliesTo pricing.AppliesTo
}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		ID:        uuid.New(),
		Name:      "Summer surcharge",
		Type:      pricing.RuleTypePercentage,
		Value:     decimal.NewFromInt(20),
		StartDate: pricing.NewDate(2024, time.January, 1),
		EndDate:   pricing.NewDate(2024, time.December, 31),
		AppliesTo: pricing.AppliesToAll,
	}
}

func (r *RuleBuilder) With(mutate func(*RuleBuilder)) *RuleBuilder {
	mutate(r)
	return r
}

func (r *RuleBuilder) BuildDomain() pricing.Rule {
	effect, err := pricing.NewEffect(r.Type, r.Value)
	if err != nil {
		panic(err)
	}
	return pricing.NewRule(r.ID, r.Name, effect, r.StartDate, r.EndDate, r.AppliesTo)
}

func (r *RuleBuilder) BuildRecord(hostID uuid.UUID, position int) pricing.RuleRecord {
	return pricing.RuleRecord{
		ID:        r.ID,
		HostID:    hostID,
		Position:  position,
		RuleName:  r.Name,
		RuleType:  r.Type.String(),
		Value:     r.Value,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		AppliesTo: r.AppliesTo.String(),
	}
}

func (r *RuleBuilder) BuildInfra(hostID uuid.UUID, position int32) sqlc.PricingRules {
	return sqlc.PricingRules{
		ID:        r.ID,
		HostID:    hostID,
		Position:  position,
		RuleName:  r.Name,
		RuleType:  r.Type.String(),
		Value:     pgconv.DecimalToNumeric(r.Value),
		StartDate: pgconv.DateToPgtype(r.StartDate.Time()),
		EndDate:   pgconv.DateToPgtype(r.EndDate.Time()),
		AppliesTo: r.AppliesTo.String(),
	}
}

func (r *RuleBuilder) BuildRequestDTO() reqdto.PricingRuleRequest {
	id := r.ID
	return reqdto.PricingRuleRequest{
		ID:        &id,
		Name:      r.Name,
		Type:      r.Type.String(),
		Value:     reqdto.NewAmount(r.Value),
		StartDate: r.StartDate.String(),
		EndDate:   r.EndDate.String(),
		AppliesTo: r.AppliesTo.String(),
	}
}

type OverrideBuilder struct {
	Date   pricing.Date
	Price  decimal.Decimal
	Reason *string
}

func NewOverrideBuilder() *OverrideBuilder {
	reason := "Festival"
	return &OverrideBuilder{
		Date:   pricing.NewDate(2024, time.July, 4),
		Price:  decimal.NewFromInt(200),
		Reason: &reason,
	}
}

func (o *OverrideBuilder) With(mutate func(*OverrideBuilder)) *OverrideBuilder {
	mutate(o)
	return o
}

func (o *OverrideBuilder) BuildRecord(hostID uuid.UUID) pricing.OverrideRecord {
	return pricing.OverrideRecord{
		HostID: hostID,
		Date:   o.Date,
		Price:  o.Price,
		Notes:  o.Reason,
	}
}

func (o *OverrideBuilder) BuildInfra(hostID uuid.UUID) sqlc.DateOverrides {
	return sqlc.DateOverrides{
		ID:     uuid.New(),
		HostID: hostID,
		Date:   pgconv.DateToPgtype(o.Date.Time()),
		Price:  pgconv.DecimalToNumeric(o.Price),
		Notes:  pgconv.StringPtrToPgtype(o.Reason),
	}
}

func (o *OverrideBuilder) BuildRequestDTO() reqdto.DateOverrideRequest {
	return reqdto.DateOverrideRequest{
		Date:   o.Date.String(),
		Price:  reqdto.NewAmount(o.Price),
		Reason: o.Reason,
	}
}

// PricingBuilder assembles a whole host configuration.
type PricingBuilder struct {
	HostID    uuid.UUID
	BasePrice decimal.Decimal
	Rules     []*RuleBuilder
	Overrides []*OverrideBuilder
}

func NewPricingBuilder() *PricingBuilder {
	return &PricingBuilder{
		HostID:    uuid.New(),
		BasePrice: decimal.NewFromInt(100),
		Rules:     []*RuleBuilder{NewRuleBuilder()},
		Overrides: []*OverrideBuilder{NewOverrideBuilder()},
	}
}

func (p *PricingBuilder) With(mutate func(*PricingBuilder)) *PricingBuilder {
	mutate(p)
	return p
}

func (p *PricingBuilder) BuildDomain() *pricing.RuleStore {
	store := pricing.NewRuleStore(p.BasePrice)
	for _, r := range p.Rules {
		store.AddRule(r.BuildDomain())
	}
	for _, o := range p.Overrides {
		store.AddOverride(o.Date, o.Price, o.Reason)
	}
	return store
}

func (p *PricingBuilder) BuildRecords() *pricing.Records {
	rec := &pricing.Records{
		HostID:               p.HostID,
		DefaultPricePerNight: p.BasePrice,
		Rules:                make([]pricing.RuleRecord, 0, len(p.Rules)),
		Overrides:            make([]pricing.OverrideRecord, 0, len(p.Overrides)),
	}
	for i, r := range p.Rules {
		rec.Rules = append(rec.Rules, r.BuildRecord(p.HostID, i))
	}
	for _, o := range p.Overrides {
		rec.Overrides = append(rec.Overrides, o.BuildRecord(p.HostID))
	}
	return rec
}

func (p *PricingBuilder) BuildHostRow() sqlc.GetHostPricingRow {
	return sqlc.GetHostPricingRow{
		ID:                   p.HostID,
		DefaultPricePerNight: pgconv.DecimalToNumeric(p.BasePrice),
	}
}

func (p *PricingBuilder) BuildRuleRows() []sqlc.PricingRules {
	rows := make([]sqlc.PricingRules, 0, len(p.Rules))
	for i, r := range p.Rules {
		rows = append(rows, r.BuildInfra(p.HostID, int32(i)))
	}
	return rows
}

func (p *PricingBuilder) BuildOverrideRows() []sqlc.DateOverrides {
	rows := make([]sqlc.DateOverrides, 0, len(p.Overrides))
	for _, o := range p.Overrides {
		rows = append(rows, o.BuildInfra(p.HostID))
	}
	return rows
}

func (p *PricingBuilder) BuildSaveRequestDTO() reqdto.SavePricingRequest {
	req := reqdto.SavePricingRequest{
		BasePrice: reqdto.NewAmount(p.BasePrice),
		Rules:     make([]reqdto.PricingRuleRequest, 0, len(p.Rules)),
		Overrides: make([]reqdto.DateOverrideRequest, 0, len(p.Overrides)),
	}
	for _, r := range p.Rules {
		req.Rules = append(req.Rules, r.BuildRequestDTO())
	}
	for _, o := range p.Overrides {
		req.Overrides = append(req.Overrides, o.BuildRequestDTO())
	}
	return req
}
