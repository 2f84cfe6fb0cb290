package response

import (
	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/usecase/queries"
)

type PricingRuleResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Type               string  `json:"type"`
	Value              float64 `json:"value"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	AppliesTo          string  `json:"applies_to"`
	ValueOutOfRange    bool    `json:"value_out_of_range,omitempty"`
	PeriodNeverMatches bool    `json:"period_never_matches,omitempty"`
}

type DateOverrideResponse struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Reason *string `json:"reason,omitempty"`
}

type PricingResponse struct {
	HostID    string                 `json:"host_id"`
	BasePrice float64                `json:"base_price"`
	Rules     []PricingRuleResponse  `json:"rules"`
	Overrides []DateOverrideResponse `json:"overrides"`
}

type DayPriceResponse struct {
	Date         string   `json:"date"`
	Price        float64  `json:"price"`
	Weekend      bool     `json:"weekend"`
	Overridden   bool     `json:"overridden"`
	AppliedRules []string `json:"applied_rules"`
}

type CalendarResponse struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Days  []DayPriceResponse `json:"days"`
}

type RuleCreatedResponse struct {
	ID string `json:"id"`
}

func FromPricingView(v *queries.PricingView) *PricingResponse {
	res := &PricingResponse{
		HostID:    v.HostID.String(),
		BasePrice: v.Store.BasePrice().InexactFloat64(),
		Rules:     make([]PricingRuleResponse, 0),
		Overrides: make([]DateOverrideResponse, 0),
	}
	for _, r := range v.Store.Rules() {
		res.Rules = append(res.Rules, FromRule(r))
	}
	for _, o := range v.Store.Overrides() {
		res.Overrides = append(res.Overrides, DateOverrideResponse{
			Date:   o.Date().String(),
			Price:  o.Price().InexactFloat64(),
			Reason: o.Reason(),
		})
	}
	return res
}

func FromRule(r pricing.Rule) PricingRuleResponse {
	return PricingRuleResponse{
		ID:                 r.ID().String(),
		Name:               r.Name(),
		Type:               r.Type().String(),
		Value:              r.Value().InexactFloat64(),
		StartDate:          r.StartDate().String(),
		EndDate:            r.EndDate().String(),
		AppliesTo:          r.AppliesTo().String(),
		ValueOutOfRange:    r.Effect().IsAdvisoryOutOfRange(),
		PeriodNeverMatches: r.Period().IsInverted(),
	}
}

func FromResolution(r pricing.Resolution) DayPriceResponse {
	applied := make([]string, len(r.AppliedRules))
	for i, id := range r.AppliedRules {
		applied[i] = id.String()
	}
	return DayPriceResponse{
		Date:         r.Date.String(),
		Price:        r.Price.InexactFloat64(),
		Weekend:      r.Date.IsWeekend(),
		Overridden:   r.Overridden,
		AppliedRules: applied,
	}
}

func FromCalendarView(v *queries.CalendarView) *CalendarResponse {
	res := &CalendarResponse{
		Year:  v.Year,
		Month: int(v.Month),
		Days:  make([]DayPriceResponse, len(v.Days)),
	}
	for i, d := range v.Days {
		res.Days[i] = FromResolution(d)
	}
	return res
}
