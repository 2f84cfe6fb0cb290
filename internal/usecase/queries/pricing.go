package queries

import (
	"context"
	"log/slog"
	"time"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/infra"
	sqlc "host-pricing/internal/infra/sqlc/generated"
	"host-pricing/internal/pkg/clock"
	"host-pricing/internal/pkg/errs"
	"host-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type PricingView struct {
	HostID uuid.UUID
	Store  *pricing.RuleStore
}

type CalendarView struct {
	HostID uuid.UUID
	Year   int
	Month  time.Month
	Days   []pricing.Resolution
	Cached bool
}

type PricingReadStore interface {
	Load(ctx context.Context, db sqlc.DBTX, hostID uuid.UUID) (*pricing.Records, error)
}

type PricingQueries interface {
	GetConfig(ctx context.Context, hostID uuid.UUID) (*PricingView, error)
	Calendar(ctx context.Context, hostID uuid.UUID, year int, month time.Month) (*CalendarView, error)
	ResolveDate(ctx context.Context, hostID uuid.UUID, date pricing.Date) (*pricing.Resolution, error)
	Preview(draft *pricing.RuleStore, year int, month time.Month) *CalendarView
}

type pricingQueriesImpl struct {
	uow   shared.UnitOfWork
	store PricingReadStore
	cache shared.CalendarCache
	clock clock.Clock
}

func NewPricingQueries(uow shared.UnitOfWork, store PricingReadStore, cache shared.CalendarCache, clk clock.Clock) PricingQueries {
	return &pricingQueriesImpl{uow: uow, store: store, cache: cache, clock: clk}
}

func (q *pricingQueriesImpl) GetConfig(ctx context.Context, hostID uuid.UUID) (*PricingView, error) {
	store, err := q.load(ctx, hostID)
	if err != nil {
		return nil, err
	}
	return &PricingView{HostID: hostID, Store: store}, nil
}

// Calendar falls back to the clock's current month when year or month is zero.
func (q *pricingQueriesImpl) Calendar(ctx context.Context, hostID uuid.UUID, year int, month time.Month) (*CalendarView, error) {
	if year == 0 || month == 0 {
		now := q.clock.Now()
		year, month = now.Year(), now.Month()
	}

	cached, rev, err := q.cache.Get(ctx, hostID, year, month)
	if err != nil {
		slog.Warn("calendar cache read failed", "host_id", hostID.String(), "error", err.Error())
	}
	if cached != nil {
		return &CalendarView{HostID: hostID, Year: cached.Year, Month: cached.Month, Days: cached.Days, Cached: true}, nil
	}

	store, err := q.load(ctx, hostID)
	if err != nil {
		return nil, err
	}
	grid := store.ResolveMonth(year, month)

	if putErr := q.cache.Put(ctx, hostID, rev, grid); putErr != nil {
		slog.Warn("calendar cache write failed", "host_id", hostID.String(), "error", putErr.Error())
	}
	return &CalendarView{HostID: hostID, Year: grid.Year, Month: grid.Month, Days: grid.Days}, nil
}

func (q *pricingQueriesImpl) ResolveDate(ctx context.Context, hostID uuid.UUID, date pricing.Date) (*pricing.Resolution, error) {
	store, err := q.load(ctx, hostID)
	if err != nil {
		return nil, err
	}
	res := store.Explain(date)
	return &res, nil
}

// Preview resolves an unsaved draft. It never touches storage or the cache.
func (q *pricingQueriesImpl) Preview(draft *pricing.RuleStore, year int, month time.Month) *CalendarView {
	if year == 0 || month == 0 {
		now := q.clock.Now()
		year, month = now.Year(), now.Month()
	}
	grid := draft.Snapshot().ResolveMonth(year, month)
	return &CalendarView{Year: grid.Year, Month: grid.Month, Days: grid.Days}
}

func (q *pricingQueriesImpl) load(ctx context.Context, hostID uuid.UUID) (*pricing.RuleStore, error) {
	var rec *pricing.Records
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var lerr error
		rec, lerr = q.store.Load(ctx, db, hostID)
		return lerr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHostNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	store, err := pricing.LoadRuleStore(*rec)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	return store, nil
}
