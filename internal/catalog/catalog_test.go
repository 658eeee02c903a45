package catalog_test

import (
	"context"
	"testing"

	"github.com/Aravindhan20041506/Lacto-hub/internal/catalog"
	"github.com/Aravindhan20041506/Lacto-hub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsSeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := catalog.NewService(store)

	products, err := svc.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default, products)

	// The seed is persisted, not recomputed.
	_, err = store.Load(ctx, catalog.Key)
	require.NoError(t, err)
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(storage.NewMemory())

	p, err := svc.Find(ctx, "milk1")
	require.NoError(t, err)
	assert.Equal(t, "Milk", p.Name)
	assert.Equal(t, 60.0, p.Price)

	_, err = svc.Find(ctx, "bread1")
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
}
