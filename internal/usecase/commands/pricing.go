package commands

import (
	"context"
	"log/slog"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/infra"
	"host-pricing/internal/pkg/errs"
	"host-pricing/internal/pkg/patch"
	"host-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricingCommands interface {
	Save(ctx context.Context, hostID uuid.UUID, draft *pricing.RuleStore) error
	SetBasePrice(ctx context.Context, hostID uuid.UUID, amount decimal.Decimal) error
	AddRule(ctx context.Context, hostID uuid.UUID, rule pricing.Rule) (uuid.UUID, error)
	UpdateRule(ctx context.Context, hostID, ruleID uuid.UUID, p RulePatch) error
	DeleteRule(ctx context.Context, hostID, ruleID uuid.UUID) error
	SetOverride(ctx context.Context, hostID uuid.UUID, date pricing.Date, price decimal.Decimal, reason *string) error
	DeleteOverride(ctx context.Context, hostID uuid.UUID, date pricing.Date) error
}

// RulePatch carries the fields of a partial rule update. Nil means unchanged.
type RulePatch struct {
	Name      *string
	Type      *pricing.RuleType
	Value     *decimal.Decimal
	StartDate *pricing.Date
	EndDate   *pricing.Date
	AppliesTo *pricing.AppliesTo
}

func (p RulePatch) Apply(current pricing.Rule) (pricing.Rule, error) {
	effect, err := pricing.NewEffect(
		patch.Coalesce(p.Type, current.Type()),
		patch.Coalesce(p.Value, current.Value()),
	)
	if err != nil {
		return pricing.Rule{}, err
	}
	return pricing.NewRule(
		current.ID(),
		patch.Coalesce(p.Name, current.Name()),
		effect,
		patch.Coalesce(p.StartDate, current.StartDate()),
		patch.Coalesce(p.EndDate, current.EndDate()),
		patch.Coalesce(p.AppliesTo, current.AppliesTo()),
	), nil
}

type pricingUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.CalendarCache
}

func NewPricingCommands(uow shared.UnitOfWork, cache shared.CalendarCache) PricingCommands {
	return &pricingUseCaseImpl{uow: uow, cache: cache}
}

// Save persists the draft as three independent replacements: base price,
// rules, overrides. A failure in a later step leaves earlier steps committed.
func (uc *pricingUseCaseImpl) Save(ctx context.Context, hostID uuid.UUID, draft *pricing.RuleStore) error {
	if err := draft.Validate(); err != nil {
		return errs.Mark(err, errs.ErrInvalidPricingConfig)
	}
	rec := draft.Serialize(hostID)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Hosts().UpdateBasePrice(ctx, tx.DB(), hostID, rec.DefaultPricePerNight)
	})
	if err != nil {
		return uc.saveFailed(hostID, "base_price", err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PricingRules().ReplaceAll(ctx, tx.DB(), hostID, rec.Rules)
	})
	if err != nil {
		uc.invalidate(ctx, hostID)
		return uc.saveFailed(hostID, "rules", err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.DateOverrides().ReplaceAll(ctx, tx.DB(), hostID, rec.Overrides)
	})
	uc.invalidate(ctx, hostID)
	if err != nil {
		return uc.saveFailed(hostID, "overrides", err)
	}

	slog.Info("pricing saved",
		"host_id", hostID.String(),
		"rules", len(rec.Rules),
		"overrides", len(rec.Overrides))
	return nil
}

func (uc *pricingUseCaseImpl) SetBasePrice(ctx context.Context, hostID uuid.UUID, amount decimal.Decimal) error {
	return uc.mutate(ctx, hostID, func(store *pricing.RuleStore) error {
		store.SetBasePrice(amount)
		return nil
	})
}

func (uc *pricingUseCaseImpl) AddRule(ctx context.Context, hostID uuid.UUID, rule pricing.Rule) (uuid.UUID, error) {
	err := uc.mutate(ctx, hostID, func(store *pricing.RuleStore) error {
		if _, exists := store.Rule(rule.ID()); exists {
			return errs.Mark(errs.New("rule id already in use"), errs.ErrInvalidPricingConfig)
		}
		store.AddRule(rule)
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rule.ID(), nil
}

func (uc *pricingUseCaseImpl) UpdateRule(ctx context.Context, hostID, ruleID uuid.UUID, p RulePatch) error {
	return uc.mutate(ctx, hostID, func(store *pricing.RuleStore) error {
		current, ok := store.Rule(ruleID)
		if !ok {
			return errs.ErrRuleNotFound
		}
		updated, err := p.Apply(current)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidPricingConfig)
		}
		store.UpdateRule(ruleID, updated)
		return nil
	})
}

func (uc *pricingUseCaseImpl) DeleteRule(ctx context.Context, hostID, ruleID uuid.UUID) error {
	return uc.mutate(ctx, hostID, func(store *pricing.RuleStore) error {
		if !store.RemoveRule(ruleID) {
			return errs.ErrRuleNotFound
		}
		return nil
	})
}

func (uc *pricingUseCaseImpl) SetOverride(ctx context.Context, hostID uuid.UUID, date pricing.Date, price decimal.Decimal, reason *string) error {
	return uc.mutate(ctx, hostID, func(store *pricing.RuleStore) error {
		store.AddOverride(date, price, reason)
		return nil
	})
}

func (uc *pricingUseCaseImpl) DeleteOverride(ctx context.Context, hostID uuid.UUID, date pricing.Date) error {
	return uc.mutate(ctx, hostID, func(store *pricing.RuleStore) error {
		if !store.RemoveOverride(date) {
			return errs.ErrOverrideNotFound
		}
		return nil
	})
}

// mutate loads the saved configuration, applies fn and saves the result.
func (uc *pricingUseCaseImpl) mutate(ctx context.Context, hostID uuid.UUID, fn func(store *pricing.RuleStore) error) error {
	rec, err := uc.uow.CommandReads().PricingByHostID(ctx, hostID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrHostNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	store, err := pricing.LoadRuleStore(*rec)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	if err := fn(store); err != nil {
		return err
	}
	return uc.Save(ctx, hostID, store)
}

func (uc *pricingUseCaseImpl) invalidate(ctx context.Context, hostID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, hostID); err != nil {
		slog.Warn("calendar cache invalidation failed", "host_id", hostID.String(), "error", err.Error())
	}
}

func (uc *pricingUseCaseImpl) saveFailed(hostID uuid.UUID, step string, err error) error {
	slog.Error("pricing save failed",
		"host_id", hostID.String(),
		"step", step,
		"error", err.Error())
	if infra.IsKind(err, infra.KindNotFound) {
		err = errs.Mark(err, errs.ErrHostNotFound)
	}
	return errs.Mark(err, errs.ErrSaveFailed)
}
