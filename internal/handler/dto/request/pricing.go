package request

import (
	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/usecase/commands"

	"github.com/google/uuid"
)

type PricingRuleRequest struct {
	ID        *uuid.UUID `json:"id"`
	Name      string     `json:"name" binding:"max=255"`
	Type      string     `json:"type" binding:"required,oneof=percentage fixed discount"`
	Value     Amount     `json:"value"`
	StartDate string     `json:"start_date" binding:"required"`
	EndDate   string     `json:"end_date" binding:"required"`
	AppliesTo string     `json:"applies_to" binding:"required,oneof=all weekends weekdays holidays"`
}

type DateOverrideRequest struct {
	Date   string  `json:"date" binding:"required"`
	Price  Amount  `json:"price"`
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}

// SavePricingRequest is the whole configuration of a host. Rule order is
// evaluation order.
type SavePricingRequest struct {
	BasePrice Amount                `json:"base_price"`
	Rules     []PricingRuleRequest  `json:"rules" binding:"dive"`
	Overrides []DateOverrideRequest `json:"overrides" binding:"dive"`
}

type SetBasePriceRequest struct {
	Amount Amount `json:"amount"`
}

type SetOverrideRequest struct {
	Price  Amount  `json:"price"`
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}

type UpdatePricingRuleRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	Type      *string `json:"type" binding:"omitempty,oneof=percentage fixed discount"`
	Value     *Amount `json:"value"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	AppliesTo *string `json:"applies_to" binding:"omitempty,oneof=all weekends weekdays holidays"`
}

func (r *PricingRuleRequest) ToDomain() (pricing.Rule, error) {
	kind, err := pricing.NewRuleType(r.Type)
	if err != nil {
		return pricing.Rule{}, err
	}
	appliesTo, err := pricing.NewAppliesTo(r.AppliesTo)
	if err != nil {
		return pricing.Rule{}, err
	}
	start, err := pricing.ParseDate(r.StartDate)
	if err != nil {
		return pricing.Rule{}, err
	}
	end, err := pricing.ParseDate(r.EndDate)
	if err != nil {
		return pricing.Rule{}, err
	}
	effect, err := pricing.NewEffect(kind, r.Value.Decimal)
	if err != nil {
		return pricing.Rule{}, err
	}
	id := uuid.Nil
	if r.ID != nil {
		id = *r.ID
	}
	return pricing.NewRule(id, r.Name, effect, start, end, appliesTo), nil
}

// ToDomain builds a draft store. Duplicate override dates keep the last entry.
func (r *SavePricingRequest) ToDomain() (*pricing.RuleStore, error) {
	store := pricing.NewRuleStore(r.BasePrice.Decimal)
	for i := range r.Rules {
		rule, err := r.Rules[i].ToDomain()
		if err != nil {
			return nil, err
		}
		store.AddRule(rule)
	}
	for _, o := range r.Overrides {
		date, err := pricing.ParseDate(o.Date)
		if err != nil {
			return nil, err
		}
		store.AddOverride(date, o.Price.Decimal, o.Reason)
	}
	return store, nil
}

func (r *UpdatePricingRuleRequest) ToPatch() (commands.RulePatch, error) {
	var p commands.RulePatch
	p.Name = r.Name
	if r.Type != nil {
		kind, err := pricing.NewRuleType(*r.Type)
		if err != nil {
			return commands.RulePatch{}, err
		}
		p.Type = &kind
	}
	if r.Value != nil {
		v := r.Value.Decimal
		p.Value = &v
	}
	if r.StartDate != nil {
		d, err := pricing.ParseDate(*r.StartDate)
		if err != nil {
			return commands.RulePatch{}, err
		}
		p.StartDate = &d
	}
	if r.EndDate != nil {
		d, err := pricing.ParseDate(*r.EndDate)
		if err != nil {
			return commands.RulePatch{}, err
		}
		p.EndDate = &d
	}
	if r.AppliesTo != nil {
		a, err := pricing.NewAppliesTo(*r.AppliesTo)
		if err != nil {
			return commands.RulePatch{}, err
		}
		p.AppliesTo = &a
	}
	return p, nil
}
