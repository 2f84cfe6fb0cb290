//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"host-pricing/internal/domain/pricing"
	"host-pricing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	saturday = pricing.NewDate(2024, time.June, 1)
	monday   = pricing.NewDate(2024, time.June, 3)
)

func rule(mutate func(*builder.RuleBuilder)) pricing.Rule {
	return builder.NewRuleBuilder().With(mutate).BuildDomain()
}

func storeWith(base int64, rules ...pricing.Rule) *pricing.RuleStore {
	s := pricing.NewRuleStore(decimal.NewFromInt(base))
	for _, r := range rules {
		s.AddRule(r)
	}
	return s
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		base     int64
		rules    []pricing.Rule
		date     pricing.Date
		expected string
	}{
		{
			name:     "no rules returns base price",
			base:     100,
			date:     monday,
			expected: "100.00",
		},
		{
			name: "percentage increase",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) { b.Value = decimal.NewFromInt(20) }),
			},
			date:     monday,
			expected: "120.00",
		},
		{
			name: "percentages compound in order",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) { b.Value = decimal.NewFromInt(10) }),
				rule(func(b *builder.RuleBuilder) { b.Value = decimal.NewFromInt(10) }),
			},
			date:     monday,
			expected: "121.00",
		},
		{
			name: "discount",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) {
					b.Type = pricing.RuleTypeDiscount
					b.Value = decimal.NewFromInt(25)
				}),
			},
			date:     monday,
			expected: "75.00",
		},
		{
			name: "percentage then fixed: fixed wins",
			base: 50,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) { b.Value = decimal.NewFromInt(20) }),
				rule(func(b *builder.RuleBuilder) {
					b.Type = pricing.RuleTypeFixed
					b.Value = decimal.NewFromInt(100)
				}),
			},
			date:     monday,
			expected: "100.00",
		},
		{
			name: "fixed then percentage: percentage applies to fixed",
			base: 50,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) {
					b.Type = pricing.RuleTypeFixed
					b.Value = decimal.NewFromInt(100)
				}),
				rule(func(b *builder.RuleBuilder) { b.Value = decimal.NewFromInt(20) }),
			},
			date:     monday,
			expected: "120.00",
		},
		{
			name: "weekend rule on a saturday",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) { b.AppliesTo = pricing.AppliesToWeekends }),
			},
			date:     saturday,
			expected: "120.00",
		},
		{
			name: "weekend rule on a monday",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) { b.AppliesTo = pricing.AppliesToWeekends }),
			},
			date:     monday,
			expected: "100.00",
		},
		{
			name: "weekday rule on a saturday",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) { b.AppliesTo = pricing.AppliesToWeekdays }),
			},
			date:     saturday,
			expected: "100.00",
		},
		{
			name: "holiday rule never applies",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) { b.AppliesTo = pricing.AppliesToHolidays }),
			},
			date:     pricing.NewDate(2024, time.December, 25),
			expected: "100.00",
		},
		{
			name: "date outside rule period",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) {
					b.StartDate = pricing.NewDate(2024, time.July, 1)
					b.EndDate = pricing.NewDate(2024, time.August, 31)
				}),
			},
			date:     pricing.NewDate(2024, time.June, 30),
			expected: "100.00",
		},
		{
			name: "period bounds are inclusive",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) {
					b.StartDate = pricing.NewDate(2024, time.July, 1)
					b.EndDate = pricing.NewDate(2024, time.July, 1)
				}),
			},
			date:     pricing.NewDate(2024, time.July, 1),
			expected: "120.00",
		},
		{
			name: "inverted period never matches",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) {
					b.StartDate = pricing.NewDate(2024, time.December, 31)
					b.EndDate = pricing.NewDate(2024, time.January, 1)
				}),
			},
			date:     monday,
			expected: "100.00",
		},
		{
			name: "discount above 100 is applied as given",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) {
					b.Type = pricing.RuleTypeDiscount
					b.Value = decimal.NewFromInt(150)
				}),
			},
			date:     monday,
			expected: "-50.00",
		},
		{
			name: "negative discount raises the price",
			base: 100,
			rules: []pricing.Rule{
				rule(func(b *builder.RuleBuilder) {
					b.Type = pricing.RuleTypeDiscount
					b.Value = decimal.NewFromInt(-10)
				}),
			},
			date:     monday,
			expected: "110.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := storeWith(tc.base, tc.rules...)
			assert.Equal(t, tc.expected, store.Resolve(tc.date).StringFixed(2))
		})
	}
}

func TestResolve_Rounding(t *testing.T) {
	t.Run("rounds half away from zero to cents", func(t *testing.T) {
		store := pricing.NewRuleStore(decimal.RequireFromString("10.005"))
		assert.Equal(t, "10.01", store.Resolve(monday).StringFixed(2))
	})

	t.Run("rounding happens once at the end", func(t *testing.T) {
		// 33.335 * 1.1 * 1.1 = 40.33535
		store := storeWith(0,
			rule(func(b *builder.RuleBuilder) { b.Value = decimal.NewFromInt(10) }),
			rule(func(b *builder.RuleBuilder) { b.Value = decimal.NewFromInt(10) }),
		)
		store.SetBasePrice(decimal.RequireFromString("33.335"))
		assert.Equal(t, "40.34", store.Resolve(monday).StringFixed(2))
	})
}

func TestResolve_Override(t *testing.T) {
	t.Run("override wins over matching rules", func(t *testing.T) {
		store := storeWith(100,
			rule(func(b *builder.RuleBuilder) {
				b.Type = pricing.RuleTypeFixed
				b.Value = decimal.NewFromInt(500)
			}),
		)
		store.AddOverride(monday, decimal.NewFromInt(42), nil)

		assert.Equal(t, "42.00", store.Resolve(monday).StringFixed(2))
		assert.Equal(t, "500.00", store.Resolve(monday.AddDays(1)).StringFixed(2))
	})

	t.Run("override price is returned as stored", func(t *testing.T) {
		store := pricing.NewRuleStore(decimal.NewFromInt(100))
		store.AddOverride(monday, decimal.RequireFromString("99.999"), nil)

		assert.True(t, decimal.RequireFromString("99.999").Equal(store.Resolve(monday)))
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		store := builder.NewPricingBuilder().BuildDomain()
		d := pricing.NewDate(2024, time.July, 4)

		first := store.Resolve(d)
		second := store.Resolve(d)
		assert.True(t, first.Equal(second))
	})
}

func TestExplain(t *testing.T) {
	weekend := rule(func(b *builder.RuleBuilder) { b.AppliesTo = pricing.AppliesToWeekends })
	always := rule(func(b *builder.RuleBuilder) {
		b.Type = pricing.RuleTypeDiscount
		b.Value = decimal.NewFromInt(10)
	})
	store := storeWith(100, weekend, always)

	t.Run("lists applied rules in evaluation order", func(t *testing.T) {
		res := store.Explain(saturday)
		assert.Equal(t, "108.00", res.Price.StringFixed(2))
		assert.False(t, res.Overridden)
		assert.Equal(t, []uuid.UUID{weekend.ID(), always.ID()}, res.AppliedRules)
	})

	t.Run("skips rules that do not match", func(t *testing.T) {
		res := store.Explain(monday)
		assert.Equal(t, []uuid.UUID{always.ID()}, res.AppliedRules)
	})

	t.Run("override reports no rules", func(t *testing.T) {
		s := store.Clone()
		s.AddOverride(saturday, decimal.NewFromInt(10), nil)

		res := s.Explain(saturday)
		assert.True(t, res.Overridden)
		assert.Empty(t, res.AppliedRules)
		assert.Equal(t, saturday, res.Date)
	})
}

func TestResolveMonth(t *testing.T) {
	t.Run("leap february", func(t *testing.T) {
		store := storeWith(100,
			rule(func(b *builder.RuleBuilder) { b.AppliesTo = pricing.AppliesToWeekends }),
		)
		store.AddOverride(pricing.NewDate(2024, time.February, 14), decimal.NewFromInt(300), nil)

		grid := store.ResolveMonth(2024, time.February)
		require.Len(t, grid.Days, 29)
		assert.Equal(t, 2024, grid.Year)
		assert.Equal(t, time.February, grid.Month)

		for i, day := range grid.Days {
			assert.Equal(t, pricing.NewDate(2024, time.February, i+1), day.Date)
			assert.True(t, store.Resolve(day.Date).Equal(day.Price), "day %s", day.Date)
		}
		assert.True(t, grid.Days[13].Overridden)
	})

	t.Run("non leap february", func(t *testing.T) {
		grid := storeWith(100).ResolveMonth(2023, time.February)
		assert.Len(t, grid.Days, 28)
	})

	t.Run("prices map covers every day", func(t *testing.T) {
		grid := storeWith(80).ResolveMonth(2024, time.April)
		prices := grid.Prices()
		require.Len(t, prices, 30)
		assert.Equal(t, "80.00", prices[pricing.NewDate(2024, time.April, 30)].StringFixed(2))
	})
}

func TestSnapshot(t *testing.T) {
	store := storeWith(100,
		rule(func(b *builder.RuleBuilder) { b.Value = decimal.NewFromInt(50) }),
	)
	snap := store.Snapshot()

	store.SetBasePrice(decimal.NewFromInt(1))
	store.AddOverride(monday, decimal.NewFromInt(2), nil)

	assert.Equal(t, "150.00", snap.Resolve(monday).StringFixed(2))
	assert.Equal(t, 1, snap.RuleCount())
	assert.Equal(t, 0, snap.OverrideCount())
	assert.True(t, decimal.NewFromInt(100).Equal(snap.BasePrice()))
	assert.Len(t, snap.ResolveMonth(2024, time.June).Days, 30)
	assert.Equal(t, "150.00", snap.Explain(monday).Price.StringFixed(2))
}
