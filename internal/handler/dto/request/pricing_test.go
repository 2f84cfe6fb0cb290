//go:build unit

package request_test

import (
	"encoding/json"
	"testing"
	"time"

	"host-pricing/internal/domain/pricing"
	reqdto "host-pricing/internal/handler/dto/request"
	"host-pricing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "integer", raw: `{"amount": 100}`, expected: "100.00"},
		{name: "fraction", raw: `{"amount": 89.5}`, expected: "89.50"},
		{name: "numeric string", raw: `{"amount": " 42.10 "}`, expected: "42.10"},
		{name: "negative", raw: `{"amount": -5}`, expected: "-5.00"},
		{name: "text", raw: `{"amount": "abc"}`, expected: "0.00"},
		{name: "empty string", raw: `{"amount": ""}`, expected: "0.00"},
		{name: "null", raw: `{"amount": null}`, expected: "0.00"},
		{name: "boolean", raw: `{"amount": false}`, expected: "0.00"},
		{name: "array", raw: `{"amount": [1]}`, expected: "0.00"},
		{name: "absent", raw: `{}`, expected: "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req reqdto.SetBasePriceRequest
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &req))
			assert.Equal(t, tc.expected, req.Amount.StringFixed(2))
		})
	}
}

func TestSavePricingRequest_ToDomain(t *testing.T) {
	t.Run("keeps rule order and ids", func(t *testing.T) {
		pb := builder.NewPricingBuilder().With(func(b *builder.PricingBuilder) {
			b.Rules = append(b.Rules, builder.NewRuleBuilder().With(func(r *builder.RuleBuilder) { r.Name = "Second" }))
		})
		req := pb.BuildSaveRequestDTO()

		store, err := req.ToDomain()
		require.NoError(t, err)
		require.Len(t, store.Rules(), 2)
		assert.Equal(t, pb.Rules[0].ID, store.Rules()[0].ID())
		assert.Equal(t, "Second", store.Rules()[1].Name())
		assert.Equal(t, "100.00", store.BasePrice().StringFixed(2))
	})

	t.Run("duplicate override dates keep the last entry", func(t *testing.T) {
		pb := builder.NewPricingBuilder().With(func(b *builder.PricingBuilder) {
			b.Overrides = append(b.Overrides, builder.NewOverrideBuilder().With(func(o *builder.OverrideBuilder) {
				o.Price = o.Price.Add(o.Price)
				o.Reason = nil
			}))
		})
		req := pb.BuildSaveRequestDTO()

		store, err := req.ToDomain()
		require.NoError(t, err)
		require.Len(t, store.Overrides(), 1)
		assert.Equal(t, "400.00", store.Overrides()[0].Price().StringFixed(2))
		assert.Nil(t, store.Overrides()[0].Reason())
	})

	t.Run("invalid rule date fails", func(t *testing.T) {
		req := builder.NewPricingBuilder().BuildSaveRequestDTO()
		req.Rules[0].StartDate = "2024-04-31"

		_, err := req.ToDomain()
		assert.ErrorIs(t, err, pricing.ErrInvalidDate)
	})

	t.Run("invalid override date fails", func(t *testing.T) {
		req := builder.NewPricingBuilder().BuildSaveRequestDTO()
		req.Overrides[0].Date = "07/04/2024"

		_, err := req.ToDomain()
		assert.ErrorIs(t, err, pricing.ErrInvalidDate)
	})
}

func TestPricingRuleRequest_ToDomain(t *testing.T) {
	t.Run("missing id is generated", func(t *testing.T) {
		req := builder.NewRuleBuilder().BuildRequestDTO()
		req.ID = nil

		rule, err := req.ToDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rule.ID())
	})

	t.Run("unknown type fails", func(t *testing.T) {
		req := builder.NewRuleBuilder().BuildRequestDTO()
		req.Type = "bonus"

		_, err := req.ToDomain()
		assert.ErrorIs(t, err, pricing.ErrInvalidRuleType)
	})
}

func TestUpdatePricingRuleRequest_ToPatch(t *testing.T) {
	name := "Peak"
	end := "2024-08-31"
	weekdays := "weekdays"
	req := reqdto.UpdatePricingRuleRequest{Name: &name, EndDate: &end, AppliesTo: &weekdays}

	p, err := req.ToPatch()
	require.NoError(t, err)
	assert.Equal(t, &name, p.Name)
	require.NotNil(t, p.EndDate)
	assert.Equal(t, pricing.NewDate(2024, time.August, 31), *p.EndDate)
	require.NotNil(t, p.AppliesTo)
	assert.Equal(t, pricing.AppliesToWeekdays, *p.AppliesTo)
	assert.Nil(t, p.Type)
	assert.Nil(t, p.Value)
	assert.Nil(t, p.StartDate)

	bad := "yesterday"
	_, err = (&reqdto.UpdatePricingRuleRequest{StartDate: &bad}).ToPatch()
	assert.ErrorIs(t, err, pricing.ErrInvalidDate)
}
