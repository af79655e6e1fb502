package memory_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/repository/memory"
)

func TestStore_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	boom := errors.New("boom")
	err := store.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		_, err := s.OrderTables().Save(ctx, domain.OrderTable{NumberOfGuests: 2})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, store.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		tables, err := s.OrderTables().FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, tables)

		saved, err := s.OrderTables().Save(ctx, domain.OrderTable{Empty: true})
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.ID, "sequence rolled back with the failed transaction")
		return nil
	}))
}

func TestStore_RollbackOnPanic(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	assert.PanicsWithValue(t, "boom", func() {
		_ = store.InTx(ctx, func(ctx context.Context, s domain.Store) error {
			_, err := s.OrderTables().Save(ctx, domain.OrderTable{NumberOfGuests: 2})
			require.NoError(t, err)
			panic("boom")
		})
	})

	require.NoError(t, store.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		tables, err := s.OrderTables().FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, tables)
		return nil
	}))
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := memory.New().InTx(ctx, func(context.Context, domain.Store) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStore_TablesAndGroups(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		a, _ := s.OrderTables().Save(ctx, domain.OrderTable{Empty: true})
		b, _ := s.OrderTables().Save(ctx, domain.OrderTable{Empty: true})

		n, err := s.OrderTables().CountMatching(ctx, []int64{a.ID, b.ID, 99})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		g, err := s.TableGroups().Save(ctx, domain.TableGroup{OrderTables: []domain.OrderTable{a, b}})
		require.NoError(t, err)
		g.AssignID(g.ID)
		for _, m := range g.OrderTables {
			require.NoError(t, s.OrderTables().Update(ctx, m))
		}

		found, err := s.TableGroups().FindByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{a.ID, b.ID}, found.TableIDs())

		_, err = s.TableGroups().FindByID(ctx, 42)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		err = s.OrderTables().Update(ctx, domain.OrderTable{ID: 42})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		return nil
	}))
}

func TestStore_ReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.InTx(ctx, func(ctx context.Context, s domain.Store) error {
		saved, err := s.Orders().Save(ctx, domain.Order{
			OrderTableID:   1,
			OrderStatus:    domain.StatusCooking,
			OrderLineItems: []domain.OrderLineItem{{MenuID: 1, Quantity: 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, saved.ID, saved.OrderLineItems[0].OrderID)

		saved.OrderLineItems[0].Quantity = 99

		found, err := s.Orders().FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), found.OrderLineItems[0].Quantity)

		active, err := s.Orders().ExistsByTableIDsAndStatusIn(ctx, []int64{1}, domain.ActiveStatuses)
		require.NoError(t, err)
		assert.True(t, active)

		require.NoError(t, s.Orders().UpdateStatus(ctx, saved.ID, domain.StatusCompletion))
		active, err = s.Orders().ExistsByTableIDsAndStatusIn(ctx, []int64{1}, domain.ActiveStatuses)
		require.NoError(t, err)
		assert.False(t, active)
		return nil
	}))
}
