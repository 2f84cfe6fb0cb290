//go:build unit

package pricing_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"host-pricing/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "valid date", input: "2024-02-29", expected: "2024-02-29"},
		{name: "surrounding spaces", input: " 2024-03-01 ", expected: "2024-03-01"},
		{name: "day out of range", input: "2024-02-30", wantErr: true},
		{name: "non leap february 29", input: "2023-02-29", wantErr: true},
		{name: "wrong layout", input: "01/03/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "with time", input: "2024-03-01T00:00:00Z", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := pricing.ParseDate(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, pricing.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d.String())
		})
	}
}

func TestDate(t *testing.T) {
	t.Run("NewDate normalizes overflow", func(t *testing.T) {
		assert.Equal(t, "2024-03-01", pricing.NewDate(2024, time.February, 30).String())
		assert.Equal(t, "2025-01-01", pricing.NewDate(2024, time.December, 32).String())
	})

	t.Run("DateOf uses the calendar day of the given location", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		ts := time.Date(2024, time.March, 1, 1, 0, 0, 0, tokyo)
		assert.Equal(t, "2024-03-01", pricing.DateOf(ts).String())
		assert.Equal(t, "2024-02-29", pricing.DateOf(ts.UTC()).String())
	})

	t.Run("ordering", func(t *testing.T) {
		a := pricing.NewDate(2023, time.December, 31)
		b := pricing.NewDate(2024, time.January, 1)
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.False(t, a.Before(a))
		assert.Equal(t, b, a.AddDays(1))
	})

	t.Run("weekend classification", func(t *testing.T) {
		assert.True(t, pricing.NewDate(2024, time.June, 1).IsWeekend())
		assert.True(t, pricing.NewDate(2024, time.June, 2).IsWeekend())
		assert.False(t, pricing.NewDate(2024, time.June, 3).IsWeekend())
		assert.Equal(t, time.Friday, pricing.NewDate(2024, time.June, 7).Weekday())
	})

	t.Run("json text round trip", func(t *testing.T) {
		in := struct {
			Date pricing.Date `json:"date"`
		}{Date: pricing.NewDate(2024, time.July, 4)}

		b, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"date":"2024-07-04"}`, string(b))

		var out struct {
			Date pricing.Date `json:"date"`
		}
		require.NoError(t, json.Unmarshal(b, &out))
		assert.Equal(t, in.Date, out.Date)
		assert.Error(t, json.Unmarshal([]byte(`{"date":"nope"}`), &out))
	})

	t.Run("zero value", func(t *testing.T) {
		var d pricing.Date
		assert.True(t, d.IsZero())
		assert.False(t, pricing.NewDate(2024, time.January, 1).IsZero())

		_, err := d.MarshalText()
		assert.ErrorIs(t, err, pricing.ErrInvalidDate)
		_, err = json.Marshal(struct {
			Date pricing.Date `json:"date"`
		}{})
		assert.ErrorIs(t, err, pricing.ErrInvalidDate)
	})
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, pricing.DaysIn(2024, time.February))
	assert.Equal(t, 28, pricing.DaysIn(1900, time.February))
	assert.Equal(t, 29, pricing.DaysIn(2000, time.February))
	assert.Equal(t, 31, pricing.DaysIn(2024, time.December))
	assert.Equal(t, 30, pricing.DaysIn(2024, time.November))
}

func TestDateRange(t *testing.T) {
	start := pricing.NewDate(2024, time.July, 1)
	end := pricing.NewDate(2024, time.July, 31)

	r := pricing.NewDateRange(start, end)
	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end))
	assert.False(t, r.Contains(end.AddDays(1)))
	assert.False(t, r.IsInverted())

	inverted := pricing.NewDateRange(end, start)
	assert.True(t, inverted.IsInverted())
	assert.False(t, inverted.Contains(pricing.NewDate(2024, time.July, 15)))
}

func TestEffect(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	t.Run("apply", func(t *testing.T) {
		assert.Equal(t, "115", pricing.Percentage(decimal.NewFromInt(15)).Apply(hundred).String())
		assert.Equal(t, "85", pricing.Percentage(decimal.NewFromInt(-15)).Apply(hundred).String())
		assert.Equal(t, "30", pricing.Fixed(decimal.NewFromInt(30)).Apply(hundred).String())
		assert.Equal(t, "60", pricing.Discount(decimal.NewFromInt(40)).Apply(hundred).String())
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		_, err := pricing.NewEffect(pricing.RuleType("bogus"), hundred)
		assert.ErrorIs(t, err, pricing.ErrInvalidRuleType)
	})

	t.Run("advisory range only concerns discounts", func(t *testing.T) {
		assert.True(t, pricing.Discount(decimal.NewFromInt(101)).IsAdvisoryOutOfRange())
		assert.True(t, pricing.Discount(decimal.NewFromInt(-1)).IsAdvisoryOutOfRange())
		assert.False(t, pricing.Discount(decimal.NewFromInt(100)).IsAdvisoryOutOfRange())
		assert.False(t, pricing.Discount(decimal.Zero).IsAdvisoryOutOfRange())
		assert.False(t, pricing.Percentage(decimal.NewFromInt(500)).IsAdvisoryOutOfRange())
	})
}

func TestRuleTypeAndAppliesTo(t *testing.T) {
	for _, s := range []string{"percentage", "fixed", "discount"} {
		rt, err := pricing.NewRuleType(s)
		require.NoError(t, err)
		assert.Equal(t, s, rt.String())
	}
	_, err := pricing.NewRuleType("Percentage")
	assert.ErrorIs(t, err, pricing.ErrInvalidRuleType)

	for _, s := range []string{"all", "weekends", "weekdays", "holidays"} {
		a, err := pricing.NewAppliesTo(s)
		require.NoError(t, err)
		assert.Equal(t, s, a.String())
	}
	_, err = pricing.NewAppliesTo("")
	assert.ErrorIs(t, err, pricing.ErrInvalidAppliesTo)
}

func TestAmountCoercion(t *testing.T) {
	assert.True(t, decimal.RequireFromString("12.5").Equal(pricing.AmountFromString("12.5")))
	assert.True(t, decimal.Zero.Equal(pricing.AmountFromString("abc")))
	assert.True(t, decimal.Zero.Equal(pricing.AmountFromString("12abc")))
	assert.True(t, decimal.Zero.Equal(pricing.AmountFromFloat(math.NaN())))
	assert.True(t, decimal.Zero.Equal(pricing.AmountFromFloat(math.Inf(-1))))
	assert.True(t, decimal.RequireFromString("0.1").Equal(pricing.AmountFromFloat(0.1)))
}
