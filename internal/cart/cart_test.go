// internal/cart/cart_test.go
package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barrelhouse/liquorstore-backend/internal/models"
)

func newTestProduct(name string, price float64, quantity int) *models.Product {
	return &models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		InStock:   quantity > 0,
	}
}

func TestAddItemClampsToStock(t *testing.T) {
	product := newTestProduct("Single Malt", 2500, 5)
	c := New(uuid.NewString())

	item, err := c.AddItem(product, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	// Requesting 4 more would exceed the 5 in stock; the merged line is
	// clamped, not stored over-quantity.
	item, err = c.AddItem(product, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
	assert.Len(t, c.Items, 1)
}

func TestAddItemMergesDuplicates(t *testing.T) {
	product := newTestProduct("Reposado", 39.99, 20)
	c := New(uuid.NewString())

	_, err := c.AddItem(product, 2)
	require.NoError(t, err)
	_, err = c.AddItem(product, 3)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestAddItemRejectsInvalidQuantity(t *testing.T) {
	product := newTestProduct("Gin", 32.50, 10)
	c := New(uuid.NewString())

	_, err := c.AddItem(product, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = c.AddItem(product, -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAddItemRejectsOutOfStock(t *testing.T) {
	product := newTestProduct("Sold Out", 10, 0)
	c := New(uuid.NewString())

	_, err := c.AddItem(product, 1)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.True(t, c.Empty())
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	product := newTestProduct("Highland 12yr", 54.99, 10)
	c := New(uuid.NewString())

	_, err := c.AddItem(product, 1)
	require.NoError(t, err)

	// A later price change does not reprice the cart line.
	product.Price = 64.99
	assert.Equal(t, 54.99, c.Items[0].Price)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	product := newTestProduct("Bourbon", 45, 10)
	c := New(uuid.NewString())

	_, err := c.AddItem(product, 2)
	require.NoError(t, err)

	require.NoError(t, c.UpdateQuantity(product.ID, 0))
	assert.True(t, c.Empty())
}

func TestUpdateQuantityUnknownItem(t *testing.T) {
	c := New(uuid.NewString())
	err := c.UpdateQuantity(uuid.New(), 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestTotalRecomputedPerRead(t *testing.T) {
	c := New(uuid.NewString())

	a := newTestProduct("A", 1000, 10)
	b := newTestProduct("B", 500, 10)

	_, err := c.AddItem(a, 2)
	require.NoError(t, err)
	_, err = c.AddItem(b, 1)
	require.NoError(t, err)

	assert.InDelta(t, 2500, c.Total(), 0.001)
	assert.Equal(t, 3, c.ItemCount())

	require.NoError(t, c.UpdateQuantity(a.ID, 1))
	assert.InDelta(t, 1500, c.Total(), 0.001)
}

func TestClear(t *testing.T) {
	c := New(uuid.NewString())
	_, err := c.AddItem(newTestProduct("A", 10, 5), 1)
	require.NoError(t, err)

	c.Clear()
	assert.True(t, c.Empty())
	assert.Zero(t, c.Total())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	sessionID := uuid.NewString()

	c, err := store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, c.Empty())

	_, err = c.AddItem(newTestProduct("A", 10, 5), 2)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, c))

	loaded, err := store.Get(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 2, loaded.Items[0].Quantity)

	// Mutating a loaded copy does not leak into the store until saved.
	loaded.Clear()
	reloaded, err := store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Items, 1)

	require.NoError(t, store.Delete(ctx, sessionID))
	emptied, err := store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, emptied.Empty())
}
