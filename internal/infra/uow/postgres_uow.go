package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/infra"
	"host-pricing/internal/infra/readstore"
	"host-pricing/internal/infra/repository"
	sqlc "host-pricing/internal/infra/sqlc/generated"
	"host-pricing/internal/pkg/config"
	"host-pricing/internal/pkg/errs"
	"host-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
	errRetriesExhausted  = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds the replays of a write transaction aborted by a
// serialization failure or deadlock.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseDelay: 100 * time.Millisecond}

func NewRetryPolicy(cfg config.TxConfig) RetryPolicy {
	p := RetryPolicy{MaxRetries: cfg.MaxRetries, BaseDelay: cfg.RetryBaseDelay}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultRetryPolicy.BaseDelay
	}
	return p
}

// delay doubles per attempt with up to 20% jitter.
func (p RetryPolicy) delay(attempt int) time.Duration {
	d := p.BaseDelay << attempt
	if spread := d / 5; spread > 0 {
		d += rand.N(spread)
	}
	return d
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	policy RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, policy RetryPolicy) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, policy: policy}
}

// Within runs fn in a read-committed transaction and replays the whole
// transaction on conflicts. fn must not keep state between attempts.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, fn)
		if err == nil || !infra.IsRetryable(err) {
			return err
		}
		if attempt >= u.policy.MaxRetries {
			slog.Error("pricing transaction gave up",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errRetriesExhausted)
		}

		wait := u.policy.delay(attempt)
		slog.Warn("replaying pricing transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx, q: u.q}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// WithinReadOnly gives fn one snapshot across the host, rule and override tables.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return NewCommandReads(u, readstore.NewPricingReadStore(u.q))
}

// rollback is a no-op after a successful commit.
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Hosts() shared.HostRepository {
	return repository.NewHostRepository(t.q)
}

func (t *pgTx) PricingRules() shared.PricingRuleRepository {
	return repository.NewPricingRuleRepository(t.q)
}

func (t *pgTx) DateOverrides() shared.DateOverrideRepository {
	return repository.NewDateOverrideRepository(t.q)
}

type commandReads struct {
	uow   shared.UnitOfWork
	store *readstore.PricingReadStore
}

// NewCommandReads loads a host's configuration for an edit. Host, rules and
// overrides come from one snapshot so an edit never mixes two saves.
func NewCommandReads(uow shared.UnitOfWork, store *readstore.PricingReadStore) shared.CommandReads {
	return &commandReads{uow: uow, store: store}
}

func (r *commandReads) PricingByHostID(ctx context.Context, hostID uuid.UUID) (*pricing.Records, error) {
	var rec *pricing.Records
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		rec, err = r.store.Load(ctx, db, hostID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
