package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Records is the flat persisted form of a RuleStore.
type Records struct {
	HostID               uuid.UUID        `json:"host_id"`
	DefaultPricePerNight decimal.Decimal  `json:"default_price_per_night"`
	Rules                []RuleRecord     `json:"rules"`
	Overrides            []OverrideRecord `json:"overrides"`
}

type RuleRecord struct {
	ID        uuid.UUID       `json:"id"`
	HostID    uuid.UUID       `json:"host_id"`
	Position  int             `json:"position"`
	RuleName  string          `json:"rule_name"`
	RuleType  string          `json:"rule_type"`
	Value     decimal.Decimal `json:"value"`
	StartDate Date            `json:"start_date"`
	EndDate   Date            `json:"end_date"`
	AppliesTo string          `json:"applies_to"`
}

type OverrideRecord struct {
	HostID uuid.UUID       `json:"host_id"`
	Date   Date            `json:"date"`
	Price  decimal.Decimal `json:"price"`
	Notes  *string         `json:"notes"`
}

func (s *RuleStore) Serialize(hostID uuid.UUID) Records {
	out := Records{
		HostID:               hostID,
		DefaultPricePerNight: s.basePrice,
		Rules:                make([]RuleRecord, 0, len(s.rules)),
		Overrides:            make([]OverrideRecord, 0, len(s.overrides)),
	}
	for i, r := range s.rules {
		out.Rules = append(out.Rules, RuleRecord{
			ID:        r.id,
			HostID:    hostID,
			Position:  i,
			RuleName:  r.name,
			RuleType:  r.Type().String(),
			Value:     r.Value(),
			StartDate: r.StartDate(),
			EndDate:   r.EndDate(),
			AppliesTo: r.appliesTo.String(),
		})
	}
	for _, o := range s.Overrides() {
		out.Overrides = append(out.Overrides, OverrideRecord{
			HostID: hostID,
			Date:   o.date,
			Price:  o.price,
			Notes:  o.reason,
		})
	}
	return out
}

// LoadRuleStore rebuilds a store from records. Rule records must already be in position order.
func LoadRuleStore(rec Records) (*RuleStore, error) {
	store := NewRuleStore(rec.DefaultPricePerNight)
	for _, rr := range rec.Rules {
		rule, err := rr.ToDomain()
		if err != nil {
			return nil, err
		}
		store.AddRule(rule)
	}
	for _, ov := range rec.Overrides {
		store.AddOverride(ov.Date, ov.Price, ov.Notes)
	}
	return store, nil
}

func (rr RuleRecord) ToDomain() (Rule, error) {
	kind, err := NewRuleType(rr.RuleType)
	if err != nil {
		return Rule{}, err
	}
	appliesTo, err := NewAppliesTo(rr.AppliesTo)
	if err != nil {
		return Rule{}, err
	}
	effect, err := NewEffect(kind, rr.Value)
	if err != nil {
		return Rule{}, err
	}
	return NewRule(rr.ID, rr.RuleName, effect, rr.StartDate, rr.EndDate, appliesTo), nil
}
