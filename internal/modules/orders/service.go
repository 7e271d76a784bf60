package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/cart"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/catalog"
)

type Store interface {
	Insert(ctx context.Context, o Order) error
	FindByID(ctx context.Context, id string) (Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}

type CartReader interface {
	FindBySession(ctx context.Context, sessionID string) (cart.Cart, error)
}

type ProductFinder interface {
	Product(ctx context.Context, id string) (catalog.Product, error)
}

type Service struct {
	store    Store
	carts    CartReader
	products ProductFinder
}

func NewService(store Store, carts CartReader, products ProductFinder) *Service {
	return &Service{store: store, carts: carts, products: products}
}

// CreateFromCart snapshots the cart into an immutable order. Lines whose
// product was deleted since they were added are skipped rather than failing
// the whole order; this mirrors the cart view and is deliberate.
// The cart itself is left untouched; clearing it is the client's call.
func (s *Service) CreateFromCart(ctx context.Context, in CreateInput, userID string) (Order, error) {
	c, err := s.carts.FindBySession(ctx, in.CartSessionID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return Order{}, ErrCartEmpty
	}
	if err != nil {
		return Order{}, err
	}
	if len(c.Items) == 0 {
		return Order{}, ErrCartEmpty
	}

	items := []Item{}
	total := 0.0
	for _, line := range c.Items {
		p, err := s.products.Product(ctx, line.ProductID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return Order{}, err
		}

		subtotal := p.Price * float64(line.Quantity)
		total += subtotal
		items = append(items, Item{
			ProductID: p.ID,
			NameFR:    p.NameFR,
			NameTR:    p.NameTR,
			NameEN:    p.NameEN,
			Price:     p.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
	}

	o := Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Items:           items,
		Total:           total,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, o); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Order, error) {
	return s.store.ListAll(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return s.store.ListByUser(ctx, userID)
}
