//go:build unit

package uow_test

import (
	"context"
	"errors"
	"testing"

	"host-pricing/internal/infra"
	"host-pricing/internal/infra/readstore"
	sqlc "host-pricing/internal/infra/sqlc/generated"
	"host-pricing/internal/infra/uow"
	"host-pricing/tests/common/builder"
	readstoremock "host-pricing/tests/mock/readstore"
	sharedmock "host-pricing/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// snapshotDB stands in for the read-only transaction handed to fn.
type snapshotDB struct {
	sqlc.DBTX
	name string
}

func TestCommandReads_PricingByHostID(t *testing.T) {
	ctx := context.Background()
	pb := builder.NewPricingBuilder()
	snap := &snapshotDB{name: "snapshot"}

	runInSnapshot := func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
		return fn(ctx, snap)
	}

	t.Run("success: every table is read from the same snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		unit := sharedmock.NewMockUnitOfWork(ctrl)
		queries := readstoremock.NewMockPricingReadQueries(ctrl)

		unit.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(runInSnapshot).Times(1)
		gomock.InOrder(
			queries.EXPECT().GetHostPricing(ctx, snap, pb.HostID).Return(pb.BuildHostRow(), nil),
			queries.EXPECT().ListPricingRulesByHost(ctx, snap, pb.HostID).Return(pb.BuildRuleRows(), nil),
			queries.EXPECT().ListDateOverridesByHost(ctx, snap, pb.HostID).Return(pb.BuildOverrideRows(), nil),
		)

		reads := uow.NewCommandReads(unit, readstore.NewPricingReadStore(queries))
		rec, err := reads.PricingByHostID(ctx, pb.HostID)

		require.NoError(t, err)
		assert.Equal(t, pb.HostID, rec.HostID)
		assert.Len(t, rec.Rules, len(pb.Rules))
		assert.Len(t, rec.Overrides, len(pb.Overrides))
	})

	t.Run("error: unknown host keeps its repository kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		unit := sharedmock.NewMockUnitOfWork(ctrl)
		queries := readstoremock.NewMockPricingReadQueries(ctrl)

		unit.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(runInSnapshot).Times(1)
		queries.EXPECT().GetHostPricing(ctx, snap, pb.HostID).Return(sqlc.GetHostPricingRow{}, pgx.ErrNoRows)

		reads := uow.NewCommandReads(unit, readstore.NewPricingReadStore(queries))
		rec, err := reads.PricingByHostID(ctx, pb.HostID)

		require.Error(t, err)
		assert.Nil(t, rec)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: snapshot could not be opened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		unit := sharedmock.NewMockUnitOfWork(ctrl)
		queries := readstoremock.NewMockPricingReadQueries(ctrl)
		errBegin := errors.New("too many connections")

		unit.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).Return(errBegin).Times(1)

		reads := uow.NewCommandReads(unit, readstore.NewPricingReadStore(queries))
		rec, err := reads.PricingByHostID(ctx, pb.HostID)

		assert.ErrorIs(t, err, errBegin)
		assert.Nil(t, rec)
	})
}
