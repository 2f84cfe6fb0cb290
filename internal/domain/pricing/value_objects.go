package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

var hundred = decimal.NewFromInt(100)

// Date is a calendar day without time of day or zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate normalizes out-of-range components the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func (d Date) Year() int             { return d.year }
func (d Date) Month() time.Month     { return d.month }
func (d Date) Day() int              { return d.day }
func (d Date) IsZero() bool          { return d == Date{} }
func (d Date) String() string        { return d.Time().Format(dateLayout) }
func (d Date) Time() time.Time       { return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC) }
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) Before(o Date) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

// MarshalText refuses the zero Date since no text form of it parses back.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return nil, fmt.Errorf("%w: zero date", ErrInvalidDate)
	}
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysIn returns the number of days of the given month, leap years included.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateRange is inclusive on both ends. An inverted range contains nothing.
type DateRange struct {
	start Date
	end   Date
}

func NewDateRange(start, end Date) DateRange {
	return DateRange{start: start, end: end}
}

func (r DateRange) Start() Date { return r.start }
func (r DateRange) End() Date   { return r.end }

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

func (r DateRange) IsInverted() bool {
	return r.start.After(r.end)
}

// Effect is the price adjustment carried by a rule.
type Effect struct {
	kind  RuleType
	value decimal.Decimal
}

func NewEffect(kind RuleType, value decimal.Decimal) (Effect, error) {
	if !kind.IsValid() {
		return Effect{}, ErrInvalidRuleType
	}
	return Effect{kind: kind, value: value}, nil
}

func Percentage(value decimal.Decimal) Effect { return Effect{kind: RuleTypePercentage, value: value} }
func Fixed(value decimal.Decimal) Effect      { return Effect{kind: RuleTypeFixed, value: value} }
func Discount(value decimal.Decimal) Effect   { return Effect{kind: RuleTypeDiscount, value: value} }

func (e Effect) Type() RuleType         { return e.kind }
func (e Effect) Value() decimal.Decimal { return e.value }

// Apply runs the effect against the running price. Fixed replaces rather than compounds.
func (e Effect) Apply(price decimal.Decimal) decimal.Decimal {
	switch e.kind {
	case RuleTypePercentage:
		return price.Mul(decimal.NewFromInt(1).Add(e.value.Div(hundred)))
	case RuleTypeFixed:
		return e.value
	case RuleTypeDiscount:
		return price.Mul(decimal.NewFromInt(1).Sub(e.value.Div(hundred)))
	default:
		return price
	}
}

// IsAdvisoryOutOfRange reports a discount outside 0..100. It is never rejected.
func (e Effect) IsAdvisoryOutOfRange() bool {
	return e.kind == RuleTypeDiscount && (e.value.IsNegative() || e.value.GreaterThan(hundred))
}

// AmountFromString parses a decimal amount and coerces anything unparsable to zero.
func AmountFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// AmountFromFloat coerces NaN and infinities to zero.
func AmountFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func roundPrice(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
