package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/catalog"
)

type memStore struct {
	carts map[string]Cart
}

func newMemStore() *memStore { return &memStore{carts: map[string]Cart{}} }

func (s *memStore) FindBySession(_ context.Context, sessionID string) (Cart, error) {
	c, ok := s.carts[sessionID]
	if !ok {
		return Cart{}, ErrCartNotFound
	}
	return c, nil
}

func (s *memStore) Insert(_ context.Context, c Cart) error {
	s.carts[c.SessionID] = c
	return nil
}

func (s *memStore) ReplaceItems(_ context.Context, sessionID string, items []Item) error {
	c := s.carts[sessionID]
	c.Items = items
	s.carts[sessionID] = c
	return nil
}

func (s *memStore) DeleteBySession(_ context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

type memProducts struct {
	products map[string]catalog.Product
}

func (s *memProducts) Product(_ context.Context, id string) (catalog.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return catalog.Product{}, catalog.ErrProductNotFound
	}
	return p, nil
}

func TestAddCreatesCart(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, &memProducts{})

	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "p1", Quantity: 2}))

	c, err := store.FindBySession(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestAddMergesQuantity(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, &memProducts{})

	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "p1", Quantity: 2}))
	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "p1", Quantity: 3}))
	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "p2", Quantity: 1}))

	c, _ := store.FindBySession(context.Background(), "sess-1")
	require.Len(t, c.Items, 2)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
}

func TestUpdateSetsAbsoluteQuantity(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, &memProducts{})
	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "p1", Quantity: 5}))

	require.NoError(t, svc.Update(context.Background(), "sess-1", Item{ProductID: "p1", Quantity: 2}))

	c, _ := store.FindBySession(context.Background(), "sess-1")
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestUpdateZeroRemovesLine(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, &memProducts{})
	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "p1", Quantity: 5}))
	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "p2", Quantity: 1}))

	require.NoError(t, svc.Update(context.Background(), "sess-1", Item{ProductID: "p1", Quantity: 0}))

	c, _ := store.FindBySession(context.Background(), "sess-1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "p2", c.Items[0].ProductID)
}

func TestRemove(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, &memProducts{})
	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "p1", Quantity: 1}))
	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "p2", Quantity: 1}))

	require.NoError(t, svc.Remove(context.Background(), "sess-1", "p1"))

	c, _ := store.FindBySession(context.Background(), "sess-1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "p2", c.Items[0].ProductID)
}

func TestClear(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, &memProducts{})
	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "p1", Quantity: 1}))

	require.NoError(t, svc.Clear(context.Background(), "sess-1"))

	_, err := store.FindBySession(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestGetMissingCartIsEmptyView(t *testing.T) {
	svc := NewService(newMemStore(), &memProducts{})

	v, err := svc.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", v.SessionID)
	assert.Empty(t, v.Items)
	assert.Empty(t, v.Products)
}

func TestGetSkipsVanishedProduct(t *testing.T) {
	store := newMemStore()
	products := &memProducts{products: map[string]catalog.Product{
		"p1": {ID: "p1", NameEN: "Sofa", Price: 10},
	}}
	svc := NewService(store, products)
	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "p1", Quantity: 2}))
	require.NoError(t, svc.Add(context.Background(), "sess-1", Item{ProductID: "gone", Quantity: 1}))

	v, err := svc.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Len(t, v.Items, 2)
	require.Len(t, v.Products, 1)
	assert.Equal(t, "p1", v.Products[0].ID)
	assert.Equal(t, 2, v.Products[0].Quantity)
}
