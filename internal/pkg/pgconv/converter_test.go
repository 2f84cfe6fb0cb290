//go:build unit

package pgconv_test

import (
	"database/sql"
	"fmt"
	"math"
	"math/big"
	"testing"
	"time"

	"host-pricing/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumeric(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range []string{"0", "129.90", "-50.25", "0.0001", "99999999.99"} {
			in := decimal.RequireFromString(s)
			out, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(in))
			require.NoError(t, err)
			assert.True(t, in.Equal(out), "%s != %s", in, out)
		}
	})

	t.Run("scanned numeric", func(t *testing.T) {
		n := pgtype.Numeric{Int: big.NewInt(12990), Exp: -2, Valid: true}
		d, err := pgconv.DecimalFromNumeric(n)
		require.NoError(t, err)
		assert.Equal(t, "129.90", d.StringFixed(2))
	})

	t.Run("null is zero", func(t *testing.T) {
		d, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("NaN and infinity are rejected", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
		_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
	})
}

func TestDate(t *testing.T) {
	t.Run("keeps the calendar day", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		pd := pgconv.DateToPgtype(time.Date(2024, time.July, 4, 0, 0, 0, 0, jst))
		got, err := pgconv.DateFromPgtype(pd)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := pgconv.DateFromPgtype(pgtype.Date{})
		assert.ErrorIs(t, err, pgconv.ErrInvalidDateValue)
		_, err = pgconv.DateFromPgtype(pgtype.Date{InfinityModifier: pgtype.NegativeInfinity, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidDateValue)
	})
}

func TestText(t *testing.T) {
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
	assert.False(t, pgconv.StringPtrToPgtype(nil).Valid)

	s := "Festival"
	pt := pgconv.StringPtrToPgtype(&s)
	require.True(t, pt.Valid)
	got := pgconv.StringPtrFromPgtype(pt)
	require.NotNil(t, got)
	assert.Equal(t, s, *got)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("get host: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(nil))
}

func TestIntToInt32(t *testing.T) {
	assert.Equal(t, int32(7), pgconv.IntToInt32(7))
	assert.Equal(t, int32(math.MaxInt32), pgconv.IntToInt32(math.MaxInt32+1))
	assert.Equal(t, int32(math.MinInt32), pgconv.IntToInt32(math.MinInt32-1))
}
