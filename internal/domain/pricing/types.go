package pricing

import "errors"

var (
	ErrInvalidRuleType  = errors.New("invalid rule type")
	ErrInvalidAppliesTo = errors.New("invalid applies_to value")
)

type RuleType string

const (
	RuleTypePercentage RuleType = "percentage"
	RuleTypeFixed      RuleType = "fixed"
	RuleTypeDiscount   RuleType = "discount"
)

func (t RuleType) String() string {
	return string(t)
}

func (t RuleType) IsValid() bool {
	switch t {
	case RuleTypePercentage, RuleTypeFixed, RuleTypeDiscount:
		return true
	default:
		return false
	}
}

func NewRuleType(s string) (RuleType, error) {
	t := RuleType(s)
	if !t.IsValid() {
		return "", ErrInvalidRuleType
	}
	return t, nil
}

// AppliesTo scopes a rule to a day classification.
type AppliesTo string

const (
	AppliesToAll      AppliesTo = "all"
	AppliesToWeekends AppliesTo = "weekends"
	AppliesToWeekdays AppliesTo = "weekdays"
	// AppliesToHolidays is stored as given but never matches: there is no holiday calendar.
	AppliesToHolidays AppliesTo = "holidays"
)

func (a AppliesTo) String() string {
	return string(a)
}

func (a AppliesTo) IsValid() bool {
	switch a {
	case AppliesToAll, AppliesToWeekends, AppliesToWeekdays, AppliesToHolidays:
		return true
	default:
		return false
	}
}

func NewAppliesTo(s string) (AppliesTo, error) {
	a := AppliesTo(s)
	if !a.IsValid() {
		return "", ErrInvalidAppliesTo
	}
	return a, nil
}

func (a AppliesTo) Matches(d Date) bool {
	switch a {
	case AppliesToAll:
		return true
	case AppliesToWeekends:
		return d.IsWeekend()
	case AppliesToWeekdays:
		return !d.IsWeekend()
	default:
		return false
	}
}
