package storage_test

import (
	"context"
	"testing"

	"github.com/Aravindhan20041506/Lacto-hub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemory()

	_, err := s.Load(ctx, "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Save(ctx, "cart", []byte(`[{"id":"milk1"}]`)))
	data, err := s.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"milk1"}]`, string(data))

	require.NoError(t, s.Delete(ctx, "cart"))
	_, err = s.Load(ctx, "cart")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryCopiesData(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemory()

	buf := []byte(`[1,2,3]`)
	require.NoError(t, s.Save(ctx, "k", buf))
	buf[1] = 'x'

	data, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(data))
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := storage.NewFile(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load(ctx, "orders")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Save(ctx, "orders", []byte(`[]`)))
	require.NoError(t, s.Save(ctx, "orders", []byte(`[{"orderId":"LH1"}]`)))

	data, err := s.Load(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, `[{"orderId":"LH1"}]`, string(data))
}

func TestFileDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, err := storage.NewFile(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "cart", []byte(`[]`)))
	require.NoError(t, s.Delete(ctx, "cart"))
	require.NoError(t, s.Delete(ctx, "cart"))

	_, err = s.Load(ctx, "cart")
	require.ErrorIs(t, err, storage.ErrNotFound)
}
