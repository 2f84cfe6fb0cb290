package pricing

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRuleName   = errors.New("rule name cannot be empty")
	ErrDuplicateRuleID = errors.New("rule id used more than once")
)

// Rule is a time-bound, day-classification-scoped price adjustment.
type Rule struct {
	id        uuid.UUID
	name      string
	effect    Effect
	period    DateRange
	appliesTo AppliesTo
}

// NewRule does not reject anything: an empty name is only refused when saving,
// and an inverted period simply never matches.
func NewRule(id uuid.UUID, name string, effect Effect, start, end Date, appliesTo AppliesTo) Rule {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Rule{
		id:        id,
		name:      strings.TrimSpace(name),
		effect:    effect,
		period:    NewDateRange(start, end),
		appliesTo: appliesTo,
	}
}

func (r Rule) ID() uuid.UUID          { return r.id }
func (r Rule) Name() string           { return r.name }
func (r Rule) Effect() Effect         { return r.effect }
func (r Rule) Type() RuleType         { return r.effect.Type() }
func (r Rule) Value() decimal.Decimal { return r.effect.Value() }
func (r Rule) Period() DateRange      { return r.period }
func (r Rule) StartDate() Date        { return r.period.Start() }
func (r Rule) EndDate() Date          { return r.period.End() }
func (r Rule) AppliesTo() AppliesTo   { return r.appliesTo }

func (r Rule) Matches(d Date) bool {
	return r.period.Contains(d) && r.appliesTo.Matches(d)
}

func (r Rule) validateForSave() error {
	if r.name == "" {
		return ErrEmptyRuleName
	}
	return nil
}

// Override pins an absolute price to one calendar date.
type Override struct {
	date   Date
	price  decimal.Decimal
	reason *string
}

func NewOverride(date Date, price decimal.Decimal, reason *string) Override {
	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if trimmed == "" {
			reason = nil
		} else {
			reason = &trimmed
		}
	}
	return Override{date: date, price: price, reason: reason}
}

func (o Override) Date() Date             { return o.date }
func (o Override) Price() decimal.Decimal { return o.price }
func (o Override) Reason() *string        { return o.reason }
