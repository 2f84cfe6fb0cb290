package request

import (
	"bytes"
	"encoding/json"

	"host-pricing/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// Amount accepts a JSON number or a numeric string. Anything else, including
// null, decodes to zero instead of failing the request.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = pricing.AmountFromString(s)
		return nil
	}
	a.Decimal = pricing.AmountFromString(string(b))
	return nil
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}
