package cart_test

import (
	"context"
	"math"
	"testing"

	"github.com/Aravindhan20041506/Lacto-hub/internal/cart"
	"github.com/Aravindhan20041506/Lacto-hub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*cart.Service, context.Context) {
	t.Helper()
	return cart.NewService(storage.NewMemory()), context.Background()
}

func TestAddNewItem(t *testing.T) {
	s, ctx := newService(t)

	require.NoError(t, s.Add(ctx, "milk1", "Milk", 60))

	items, err := s.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRepeatAddBumpsQuantity(t *testing.T) {
	s, ctx := newService(t)

	require.NoError(t, s.Add(ctx, "milk1", "Milk", 60))
	require.NoError(t, s.Add(ctx, "milk1", "Milk", 60))

	items, err := s.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1, "same id must not create a second line")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddRejectsBadPrice(t *testing.T) {
	s, ctx := newService(t)

	require.ErrorIs(t, s.Add(ctx, "x", "X", -1), cart.ErrBadPrice)
	require.ErrorIs(t, s.Add(ctx, "x", "X", math.NaN()), cart.ErrBadPrice)
	require.ErrorIs(t, s.Add(ctx, "x", "X", math.Inf(1)), cart.ErrBadPrice)

	items, err := s.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	s, ctx := newService(t)

	require.NoError(t, s.Add(ctx, "milk1", "Milk", 60))
	require.NoError(t, s.SetQuantity(ctx, "milk1", 0))

	items, err := s.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSetQuantityAbsentIDIsNoop(t *testing.T) {
	s, ctx := newService(t)

	require.NoError(t, s.Add(ctx, "milk1", "Milk", 60))
	require.NoError(t, s.SetQuantity(ctx, "ghost", 5))

	items, err := s.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "milk1", items[0].ID)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s, ctx := newService(t)

	require.NoError(t, s.Add(ctx, "milk1", "Milk", 60))
	require.NoError(t, s.Remove(ctx, "milk1"))
	require.NoError(t, s.Remove(ctx, "milk1"))

	items, err := s.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// The running total must always equal a recomputation from the current
// collection, whatever the mutation sequence.
func TestTotalNeverDrifts(t *testing.T) {
	s, ctx := newService(t)

	steps := []func() error{
		func() error { return s.Add(ctx, "milk1", "Milk", 60) },
		func() error { return s.Add(ctx, "curd1", "Curd", 50) },
		func() error { return s.Add(ctx, "milk1", "Milk", 60) },
		func() error { return s.SetQuantity(ctx, "curd1", 4) },
		func() error { return s.Remove(ctx, "milk1") },
		func() error { return s.SetQuantity(ctx, "curd1", 0) },
	}

	for i, step := range steps {
		require.NoError(t, step())

		items, err := s.Items(ctx)
		require.NoError(t, err)
		total, err := s.Total(ctx)
		require.NoError(t, err)

		want := 0.0
		for _, it := range items {
			want += it.Price * float64(it.Quantity)
		}
		assert.Equal(t, want, total, "drift after step %d", i)
	}
}

func TestClearThenTotalIsZero(t *testing.T) {
	s, ctx := newService(t)

	require.NoError(t, s.Add(ctx, "milk1", "Milk", 60))
	require.NoError(t, s.Clear(ctx))

	total, err := s.Total(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCountSumsQuantities(t *testing.T) {
	s, ctx := newService(t)

	require.NoError(t, s.Add(ctx, "milk1", "Milk", 60))
	require.NoError(t, s.Add(ctx, "milk1", "Milk", 60))
	require.NoError(t, s.Add(ctx, "curd1", "Curd", 50))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
