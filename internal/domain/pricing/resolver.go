package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is an immutable view of a RuleStore at one point in time.
type Snapshot struct {
	basePrice decimal.Decimal
	rules     []Rule
	overrides map[Date]Override
}

func (s Snapshot) BasePrice() decimal.Decimal { return s.basePrice }
func (s Snapshot) RuleCount() int             { return len(s.rules) }
func (s Snapshot) OverrideCount() int         { return len(s.overrides) }

// Resolution is the resolved price of one date and what produced it.
type Resolution struct {
	Date         Date
	Price        decimal.Decimal
	Overridden   bool
	AppliedRules []uuid.UUID
}

type MonthGrid struct {
	Year  int
	Month time.Month
	Days  []Resolution
}

// Prices maps each day of the grid to its resolved price.
func (g MonthGrid) Prices() map[Date]decimal.Decimal {
	out := make(map[Date]decimal.Decimal, len(g.Days))
	for _, d := range g.Days {
		out[d.Date] = d.Price
	}
	return out
}

func (s Snapshot) Resolve(d Date) decimal.Decimal {
	return resolve(s.basePrice, s.rules, s.overrides, d, nil)
}

func (s Snapshot) Explain(d Date) Resolution {
	return explain(s.basePrice, s.rules, s.overrides, d)
}

func (s Snapshot) ResolveMonth(year int, month time.Month) MonthGrid {
	return resolveMonth(s.basePrice, s.rules, s.overrides, year, month)
}

// Resolve computes the effective nightly price without copying the store.
func (s *RuleStore) Resolve(d Date) decimal.Decimal {
	return resolve(s.basePrice, s.rules, s.overrides, d, nil)
}

func (s *RuleStore) Explain(d Date) Resolution {
	return explain(s.basePrice, s.rules, s.overrides, d)
}

func (s *RuleStore) ResolveMonth(year int, month time.Month) MonthGrid {
	return resolveMonth(s.basePrice, s.rules, s.overrides, year, month)
}

func explain(base decimal.Decimal, rules []Rule, overrides map[Date]Override, d Date) Resolution {
	res := Resolution{Date: d}
	if o, ok := overrides[d]; ok {
		res.Price = o.price
		res.Overridden = true
		return res
	}
	res.Price = resolve(base, rules, nil, d, func(r Rule) {
		res.AppliedRules = append(res.AppliedRules, r.id)
	})
	return res
}

func resolve(base decimal.Decimal, rules []Rule, overrides map[Date]Override, d Date, onApply func(Rule)) decimal.Decimal {
	if o, ok := overrides[d]; ok {
		return o.price
	}

	price := base
	for _, r := range rules {
		if !r.Matches(d) {
			continue
		}
		price = r.effect.Apply(price)
		if onApply != nil {
			onApply(r)
		}
	}
	return roundPrice(price)
}

func resolveMonth(base decimal.Decimal, rules []Rule, overrides map[Date]Override, year int, month time.Month) MonthGrid {
	n := DaysIn(year, month)
	grid := MonthGrid{
		Year:  year,
		Month: month,
		Days:  make([]Resolution, 0, n),
	}
	for day := 1; day <= n; day++ {
		grid.Days = append(grid.Days, explain(base, rules, overrides, NewDate(year, month, day)))
	}
	return grid
}
