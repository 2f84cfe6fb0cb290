//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/infra"
	"host-pricing/internal/infra/repository"
	sqlc "host-pricing/internal/infra/sqlc/generated"
	"host-pricing/internal/pkg/pgconv"
	"host-pricing/tests/common/builder"
	repositorymock "host-pricing/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errConnectionLost = errors.New("database connection lost")

// =============================================================================
// Host base price
// =============================================================================

func TestHostRepository_UpdateBasePrice(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	price := decimal.RequireFromString("129.90")

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockHostWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: base price updated",
			setupMock: func(mock *repositorymock.MockHostWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateHostBasePrice(ctx, tx, sqlc.UpdateHostBasePriceParams{
					ID:                   hostID,
					DefaultPricePerNight: pgconv.DecimalToNumeric(price),
				}).Return(int64(1), nil)
			},
		},
		{
			name: "error: host does not exist",
			setupMock: func(mock *repositorymock.MockHostWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateHostBasePrice(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockHostWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateHostBasePrice(ctx, tx, gomock.Any()).Return(int64(0), errConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockHostWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewHostRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.UpdateBasePrice(ctx, mockDB, hostID, price)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind %s, got %v", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Pricing rules
// =============================================================================

func TestPricingRuleRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	pb := builder.NewPricingBuilder().With(func(b *builder.PricingBuilder) {
		b.Rules = append(b.Rules, builder.NewRuleBuilder().With(func(r *builder.RuleBuilder) {
			r.Name = "Weekend"
			r.AppliesTo = pricing.AppliesToWeekends
		}))
	})
	records := pb.BuildRecords().Rules

	testCases := []struct {
		name          string
		rules         []pricing.RuleRecord
		setupMock     func(*repositorymock.MockPricingRuleWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name:  "success: rules inserted in position order",
			rules: records,
			setupMock: func(mock *repositorymock.MockPricingRuleWriteQueries, tx sqlc.DBTX) {
				gomock.InOrder(
					mock.EXPECT().DeletePricingRulesByHost(ctx, tx, pb.HostID).Return(int64(3), nil),
					mock.EXPECT().CreatePricingRule(ctx, tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePricingRuleParams) error {
							assert.Equal(t, int32(0), arg.Position)
							assert.Equal(t, records[0].ID, arg.ID)
							assert.Equal(t, pb.HostID, arg.HostID)
							return nil
						}),
					mock.EXPECT().CreatePricingRule(ctx, tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePricingRuleParams) error {
							assert.Equal(t, int32(1), arg.Position)
							assert.Equal(t, "Weekend", arg.RuleName)
							assert.Equal(t, "weekends", arg.AppliesTo)
							return nil
						}),
				)
			},
		},
		{
			name:  "success: empty collection only deletes",
			rules: nil,
			setupMock: func(mock *repositorymock.MockPricingRuleWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DeletePricingRulesByHost(ctx, tx, pb.HostID).Return(int64(0), nil)
			},
		},
		{
			name:  "error: delete fails",
			rules: records,
			setupMock: func(mock *repositorymock.MockPricingRuleWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DeletePricingRulesByHost(ctx, tx, pb.HostID).Return(int64(0), errConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name:  "error: host missing",
			rules: records,
			setupMock: func(mock *repositorymock.MockPricingRuleWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().DeletePricingRulesByHost(ctx, tx, pb.HostID).Return(int64(0), nil)
				mock.EXPECT().CreatePricingRule(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name:  "error: duplicate position",
			rules: records,
			setupMock: func(mock *repositorymock.MockPricingRuleWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().DeletePricingRulesByHost(ctx, tx, pb.HostID).Return(int64(0), nil)
				mock.EXPECT().CreatePricingRule(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().CreatePricingRule(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPricingRuleWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPricingRuleRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.ReplaceAll(ctx, mockDB, pb.HostID, tc.rules)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind %s, got %v", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Date overrides
// =============================================================================

func TestDateOverrideRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	pb := builder.NewPricingBuilder()
	records := pb.BuildRecords().Overrides

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockDateOverrideWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: overrides replaced",
			setupMock: func(mock *repositorymock.MockDateOverrideWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DeleteDateOverridesByHost(ctx, tx, pb.HostID).Return(int64(1), nil)
				mock.EXPECT().CreateDateOverride(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateDateOverrideParams) error {
						assert.Equal(t, pb.HostID, arg.HostID)
						assert.Equal(t, "Festival", arg.Notes.String)
						assert.True(t, arg.Notes.Valid)
						price, err := pgconv.DecimalFromNumeric(arg.Price)
						require.NoError(t, err)
						assert.Equal(t, "200.00", price.StringFixed(2))
						return nil
					})
			},
		},
		{
			name: "error: delete fails",
			setupMock: func(mock *repositorymock.MockDateOverrideWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DeleteDateOverridesByHost(ctx, tx, pb.HostID).Return(int64(0), errConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate date",
			setupMock: func(mock *repositorymock.MockDateOverrideWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().DeleteDateOverridesByHost(ctx, tx, pb.HostID).Return(int64(0), nil)
				mock.EXPECT().CreateDateOverride(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockDateOverrideWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewDateOverrideRepository(mockQueries)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.ReplaceAll(ctx, mockDB, pb.HostID, records)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind %s, got %v", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
