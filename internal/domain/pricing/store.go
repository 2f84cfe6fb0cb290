package pricing

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RuleStore is the mutable pricing configuration of one host.
// Rule order is insertion order and is part of the resolution contract.
type RuleStore struct {
	basePrice decimal.Decimal
	rules     []Rule
	overrides map[Date]Override
}

func NewRuleStore(basePrice decimal.Decimal) *RuleStore {
	return &RuleStore{
		basePrice: basePrice,
		overrides: make(map[Date]Override),
	}
}

func (s *RuleStore) BasePrice() decimal.Decimal {
	return s.basePrice
}

func (s *RuleStore) SetBasePrice(amount decimal.Decimal) {
	s.basePrice = amount
}

// SetBasePriceFromString stores zero for anything that is not a number.
func (s *RuleStore) SetBasePriceFromString(raw string) {
	s.basePrice = AmountFromString(raw)
}

func (s *RuleStore) SetBasePriceFromFloat(f float64) {
	s.basePrice = AmountFromFloat(f)
}

func (s *RuleStore) AddRule(rule Rule) {
	s.rules = append(s.rules, rule)
}

// UpdateRule replaces the rule in place, keeping its position. Unknown ids are ignored.
func (s *RuleStore) UpdateRule(id uuid.UUID, rule Rule) bool {
	for i := range s.rules {
		if s.rules[i].id == id {
			rule.id = id
			s.rules[i] = rule
			return true
		}
	}
	return false
}

func (s *RuleStore) RemoveRule(id uuid.UUID) bool {
	for i := range s.rules {
		if s.rules[i].id == id {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			return true
		}
	}
	return false
}

func (s *RuleStore) Rule(id uuid.UUID) (Rule, bool) {
	for _, r := range s.rules {
		if r.id == id {
			return r, true
		}
	}
	return Rule{}, false
}

// Rules returns a copy in insertion order.
func (s *RuleStore) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// AddOverride replaces any existing override for the same date.
func (s *RuleStore) AddOverride(date Date, price decimal.Decimal, reason *string) {
	s.overrides[date] = NewOverride(date, price, reason)
}

func (s *RuleStore) RemoveOverride(date Date) bool {
	if _, ok := s.overrides[date]; !ok {
		return false
	}
	delete(s.overrides, date)
	return true
}

func (s *RuleStore) Override(date Date) (Override, bool) {
	o, ok := s.overrides[date]
	return o, ok
}

// Overrides returns the overrides sorted by date.
func (s *RuleStore) Overrides() []Override {
	out := make([]Override, 0, len(s.overrides))
	for _, o := range s.overrides {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].date.Before(out[j].date)
	})
	return out
}

// Validate is only consulted by the save path.
func (s *RuleStore) Validate() error {
	seen := make(map[uuid.UUID]struct{}, len(s.rules))
	for _, r := range s.rules {
		if err := r.validateForSave(); err != nil {
			return err
		}
		if _, dup := seen[r.id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateRuleID, r.id)
		}
		seen[r.id] = struct{}{}
	}
	return nil
}

// Snapshot returns an independent copy for resolution.
func (s *RuleStore) Snapshot() Snapshot {
	overrides := make(map[Date]Override, len(s.overrides))
	for k, v := range s.overrides {
		overrides[k] = v
	}
	return Snapshot{
		basePrice: s.basePrice,
		rules:     s.Rules(),
		overrides: overrides,
	}
}

func (s *RuleStore) Clone() *RuleStore {
	snap := s.Snapshot()
	return &RuleStore{
		basePrice: snap.basePrice,
		rules:     snap.rules,
		overrides: snap.overrides,
	}
}
