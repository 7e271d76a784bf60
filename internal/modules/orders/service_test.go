package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/cart"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/catalog"
)

type memStore struct {
	orders map[string]Order
}

func newMemStore() *memStore { return &memStore{orders: map[string]Order{}} }

func (s *memStore) Insert(_ context.Context, o Order) error {
	s.orders[o.ID] = o
	return nil
}

func (s *memStore) FindByID(_ context.Context, id string) (Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (s *memStore) ListAll(_ context.Context) ([]Order, error) {
	out := []Order{}
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *memStore) ListByUser(_ context.Context, userID string) ([]Order, error) {
	out := []Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type memCarts struct {
	carts map[string]cart.Cart
}

func (s *memCarts) FindBySession(_ context.Context, sessionID string) (cart.Cart, error) {
	c, ok := s.carts[sessionID]
	if !ok {
		return cart.Cart{}, cart.ErrCartNotFound
	}
	return c, nil
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

var createInput = CreateInput{
	CustomerName:    "Ayşe Yılmaz",
	CustomerEmail:   "ayse@example.com",
	CustomerPhone:   "+33 6 00 00 00 00",
	CustomerAddress: "12 Rue de la Paix, Paris",
	CartSessionID:   "sess-1",
}

func TestCreateFromCart(t *testing.T) {
	store := newMemStore()
	carts := &memCarts{carts: map[string]cart.Cart{
		"sess-1": {SessionID: "sess-1", Items: []cart.Item{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		}},
	}}
	products := &memProducts{products: map[string]catalog.Product{
		"p1": {ID: "p1", NameFR: "Canapé", NameTR: "Kanepe", NameEN: "Sofa", Price: 10.00},
		"p2": {ID: "p2", NameFR: "Chaise", NameTR: "Sandalye", NameEN: "Chair", Price: 5.00},
	}}
	svc := NewService(store, carts, products)

	o, err := svc.CreateFromCart(context.Background(), createInput, "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "user-1", o.UserID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 25.00, o.Total)
	require.Len(t, o.Items, 2)
	assert.Equal(t, 20.00, o.Items[0].Subtotal)
	assert.Equal(t, 5.00, o.Items[1].Subtotal)
	assert.Equal(t, "Sofa", o.Items[0].NameEN)

	stored, err := store.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.Total, stored.Total)
}

func TestOrderSnapshotSurvivesCatalogEdit(t *testing.T) {
	store := newMemStore()
	carts := &memCarts{carts: map[string]cart.Cart{
		"sess-1": {SessionID: "sess-1", Items: []cart.Item{{ProductID: "p1", Quantity: 2}}},
	}}
	products := &memProducts{products: map[string]catalog.Product{
		"p1": {ID: "p1", NameEN: "Sofa", Price: 10.00},
	}}
	svc := NewService(store, carts, products)

	o, err := svc.CreateFromCart(context.Background(), createInput, "")
	require.NoError(t, err)

	products.products["p1"] = catalog.Product{ID: "p1", NameEN: "Deluxe Sofa", Price: 99.00}

	stored, err := svc.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.00, stored.Total)
	assert.Equal(t, 10.00, stored.Items[0].Price)
	assert.Equal(t, "Sofa", stored.Items[0].NameEN)
}

func TestCreateFromCartGuest(t *testing.T) {
	store := newMemStore()
	carts := &memCarts{carts: map[string]cart.Cart{
		"sess-1": {SessionID: "sess-1", Items: []cart.Item{{ProductID: "p1", Quantity: 1}}},
	}}
	products := &memProducts{products: map[string]catalog.Product{
		"p1": {ID: "p1", Price: 10.00},
	}}
	svc := NewService(store, carts, products)

	o, err := svc.CreateFromCart(context.Background(), createInput, "")
	require.NoError(t, err)
	assert.Empty(t, o.UserID)
}

func TestCreateFromCartMissingCart(t *testing.T) {
	svc := NewService(newMemStore(), &memCarts{carts: map[string]cart.Cart{}}, &memProducts{})

	_, err := svc.CreateFromCart(context.Background(), createInput, "")
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCreateFromCartEmptyCart(t *testing.T) {
	carts := &memCarts{carts: map[string]cart.Cart{
		"sess-1": {SessionID: "sess-1", Items: []cart.Item{}},
	}}
	svc := NewService(newMemStore(), carts, &memProducts{})

	_, err := svc.CreateFromCart(context.Background(), createInput, "")
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCreateFromCartSkipsVanishedProduct(t *testing.T) {
	carts := &memCarts{carts: map[string]cart.Cart{
		"sess-1": {SessionID: "sess-1", Items: []cart.Item{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "gone", Quantity: 3},
		}},
	}}
	products := &memProducts{products: map[string]catalog.Product{
		"p1": {ID: "p1", Price: 10.00},
	}}
	svc := NewService(newMemStore(), carts, products)

	o, err := svc.CreateFromCart(context.Background(), createInput, "")
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "p1", o.Items[0].ProductID)
	assert.Equal(t, 10.00, o.Total)
}
