//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	sqlc "host-pricing/internal/infra/sqlc/generated"
	"host-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestHost(t *testing.T, db DBLike, name string, basePrice decimal.Decimal) uuid.UUID {
	t.Helper()

	id, err := sqlc.New().CreateHost(context.Background(), db, sqlc.CreateHostParams{
		Name:                 name,
		DefaultPricePerNight: pgconv.DecimalToNumeric(basePrice),
	})
	require.NoError(t, err)
	return id
}

func HostBasePrice(t *testing.T, db DBLike, hostID uuid.UUID) decimal.Decimal {
	t.Helper()

	row, err := sqlc.New().GetHostPricing(context.Background(), db, hostID)
	require.NoError(t, err)
	price, err := pgconv.DecimalFromNumeric(row.DefaultPricePerNight)
	require.NoError(t, err)
	return price
}

// RuleNamesInOrder returns the stored rule names ordered by position.
func RuleNamesInOrder(t *testing.T, db DBLike, hostID uuid.UUID) []string {
	t.Helper()

	rows, err := sqlc.New().ListPricingRulesByHost(context.Background(), db, hostID)
	require.NoError(t, err)
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.RuleName)
	}
	return names
}

// RuleValuesInOrder returns the stored rule values ordered by position.
func RuleValuesInOrder(t *testing.T, db DBLike, hostID uuid.UUID) []decimal.Decimal {
	t.Helper()

	rows, err := sqlc.New().ListPricingRulesByHost(context.Background(), db, hostID)
	require.NoError(t, err)
	values := make([]decimal.Decimal, 0, len(rows))
	for _, r := range rows {
		v, err := pgconv.DecimalFromNumeric(r.Value)
		require.NoError(t, err)
		values = append(values, v)
	}
	return values
}

func CountOverrides(t *testing.T, db DBLike, hostID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM date_overrides WHERE host_id = $1", hostID).Scan(&n)
	require.NoError(t, err)
	return n
}

// truncates all pricing tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE date_overrides, pricing_rules, hosts RESTART IDENTITY CASCADE;")
	return err
}
