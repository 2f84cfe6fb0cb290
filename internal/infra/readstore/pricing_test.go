//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/infra"
	"host-pricing/internal/infra/readstore"
	sqlc "host-pricing/internal/infra/sqlc/generated"
	"host-pricing/tests/common/builder"
	readstoremock "host-pricing/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// Load Tests
// =============================================================================

func TestReadStore_Load(t *testing.T) {
	ctx := context.Background()
	pb := builder.NewPricingBuilder().With(func(b *builder.PricingBuilder) {
		b.Rules = append(b.Rules, builder.NewRuleBuilder().With(func(r *builder.RuleBuilder) {
			r.Name = "Weekend"
			r.AppliesTo = pricing.AppliesToWeekends
		}))
	})

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockPricingReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		verify        func(*testing.T, *pricing.Records)
	}{
		{
			name: "success: configuration loaded",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetHostPricing(ctx, gomock.Any(), pb.HostID).Return(pb.BuildHostRow(), nil)
				mock.EXPECT().ListPricingRulesByHost(ctx, gomock.Any(), pb.HostID).Return(pb.BuildRuleRows(), nil)
				mock.EXPECT().ListDateOverridesByHost(ctx, gomock.Any(), pb.HostID).Return(pb.BuildOverrideRows(), nil)
			},
			verify: func(t *testing.T, rec *pricing.Records) {
				assert.Equal(t, pb.HostID, rec.HostID)
				assert.Equal(t, "100.00", rec.DefaultPricePerNight.StringFixed(2))
				require.Len(t, rec.Rules, 2)
				assert.Equal(t, "Summer surcharge", rec.Rules[0].RuleName)
				assert.Equal(t, "Weekend", rec.Rules[1].RuleName)
				assert.Equal(t, 1, rec.Rules[1].Position)
				assert.Equal(t, "2024-12-31", rec.Rules[0].EndDate.String())
				require.Len(t, rec.Overrides, 1)
				assert.Equal(t, "2024-07-04", rec.Overrides[0].Date.String())
				require.NotNil(t, rec.Overrides[0].Notes)
				assert.Equal(t, "Festival", *rec.Overrides[0].Notes)
			},
		},
		{
			name: "success: host without rules or overrides",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetHostPricing(ctx, gomock.Any(), pb.HostID).Return(pb.BuildHostRow(), nil)
				mock.EXPECT().ListPricingRulesByHost(ctx, gomock.Any(), pb.HostID).Return(nil, nil)
				mock.EXPECT().ListDateOverridesByHost(ctx, gomock.Any(), pb.HostID).Return(nil, nil)
			},
			verify: func(t *testing.T, rec *pricing.Records) {
				assert.Empty(t, rec.Rules)
				assert.Empty(t, rec.Overrides)
			},
		},
		{
			name: "error: host not found",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetHostPricing(ctx, gomock.Any(), pb.HostID).Return(sqlc.GetHostPricingRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error on host",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetHostPricing(ctx, gomock.Any(), pb.HostID).Return(sqlc.GetHostPricingRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: database error on rules",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetHostPricing(ctx, gomock.Any(), pb.HostID).Return(pb.BuildHostRow(), nil)
				mock.EXPECT().ListPricingRulesByHost(ctx, gomock.Any(), pb.HostID).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: database error on overrides",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetHostPricing(ctx, gomock.Any(), pb.HostID).Return(pb.BuildHostRow(), nil)
				mock.EXPECT().ListPricingRulesByHost(ctx, gomock.Any(), pb.HostID).Return(pb.BuildRuleRows(), nil)
				mock.EXPECT().ListDateOverridesByHost(ctx, gomock.Any(), pb.HostID).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: NaN base price",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				row := pb.BuildHostRow()
				row.DefaultPricePerNight = pgtype.Numeric{NaN: true, Valid: true}
				mock.EXPECT().GetHostPricing(ctx, gomock.Any(), pb.HostID).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: rule with invalid date",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				rows := pb.BuildRuleRows()
				rows[0].StartDate = pgtype.Date{Valid: false}
				mock.EXPECT().GetHostPricing(ctx, gomock.Any(), pb.HostID).Return(pb.BuildHostRow(), nil)
				mock.EXPECT().ListPricingRulesByHost(ctx, gomock.Any(), pb.HostID).Return(rows, nil)
				mock.EXPECT().ListDateOverridesByHost(ctx, gomock.Any(), pb.HostID).Return(nil, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
			store := readstore.NewPricingReadStore(mockQueries)

			tc.setupMock(mockQueries)

			rec, err := store.Load(ctx, &mockDBTX{}, pb.HostID)

			if tc.expectedError {
				require.Error(t, err)
				assert.Nil(t, rec)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind %s, got %v", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, rec)
			tc.verify(t, rec)
		})
	}
}

func TestReadStore_LoadUsesGivenDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pb := builder.NewPricingBuilder()
	txDB := &mockDBTX{tag: "tx"}

	mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
	mockQueries.EXPECT().GetHostPricing(ctx, txDB, pb.HostID).Return(pb.BuildHostRow(), nil)
	mockQueries.EXPECT().ListPricingRulesByHost(ctx, txDB, pb.HostID).Return(nil, nil)
	mockQueries.EXPECT().ListDateOverridesByHost(ctx, txDB, pb.HostID).Return(nil, nil)

	store := readstore.NewPricingReadStore(mockQueries)
	_, err := store.Load(ctx, txDB, pb.HostID)
	require.NoError(t, err)
}

type mockDBTX struct {
	tag string
}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
