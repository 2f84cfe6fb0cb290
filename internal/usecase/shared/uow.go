package shared

import (
	"context"
	"time"

	"host-pricing/internal/domain/pricing"
	sqlc "host-pricing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Hosts() HostRepository
	PricingRules() PricingRuleRepository
	DateOverrides() DateOverrideRepository
	DB() sqlc.DBTX
}

type CommandReads interface {
	PricingByHostID(ctx context.Context, hostID uuid.UUID) (*pricing.Records, error)
}

type HostRepository interface {
	UpdateBasePrice(ctx context.Context, tx sqlc.DBTX, hostID uuid.UUID, price decimal.Decimal) error
}

// PricingRuleRepository replaces the whole ordered rule collection of a host.
type PricingRuleRepository interface {
	ReplaceAll(ctx context.Context, tx sqlc.DBTX, hostID uuid.UUID, rules []pricing.RuleRecord) error
}

type DateOverrideRepository interface {
	ReplaceAll(ctx context.Context, tx sqlc.DBTX, hostID uuid.UUID, overrides []pricing.OverrideRecord) error
}

// CalendarCache holds resolved month grids per host. Get reports the
// host's current revision so a grid computed after a miss is stored under the
// revision it was read at; Invalidate moves the host to a new revision.
type CalendarCache interface {
	Get(ctx context.Context, hostID uuid.UUID, year int, month time.Month) (*pricing.MonthGrid, int64, error)
	Put(ctx context.Context, hostID uuid.UUID, revision int64, grid pricing.MonthGrid) error
	Invalidate(ctx context.Context, hostID uuid.UUID) error
}
