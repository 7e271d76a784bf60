package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/catalog"
)

// Store is what the service needs from persistence; *Repo satisfies it.
type Store interface {
	FindBySession(ctx context.Context, sessionID string) (Cart, error)
	Insert(ctx context.Context, c Cart) error
	ReplaceItems(ctx context.Context, sessionID string, items []Item) error
	DeleteBySession(ctx context.Context, sessionID string) error
}

// ProductFinder resolves cart lines against the catalog.
type ProductFinder interface {
	Product(ctx context.Context, id string) (catalog.Product, error)
}

type Service struct {
	store    Store
	products ProductFinder
}

func NewService(store Store, products ProductFinder) *Service {
	return &Service{store: store, products: products}
}

type ProductView struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

type View struct {
	SessionID string        `json:"session_id"`
	Items     []Item        `json:"items"`
	Products  []ProductView `json:"products"`
}

// Get returns the cart joined with current product documents. Lines whose
// product no longer exists are left out of the product list but kept in
// items; order creation applies the same skip.
func (s *Service) Get(ctx context.Context, sessionID string) (View, error) {
	v := View{SessionID: sessionID, Items: []Item{}, Products: []ProductView{}}

	c, err := s.store.FindBySession(ctx, sessionID)
	if errors.Is(err, ErrCartNotFound) {
		return v, nil
	}
	if err != nil {
		return View{}, err
	}

	v.Items = c.Items
	for _, it := range c.Items {
		p, err := s.products.Product(ctx, it.ProductID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return View{}, err
		}
		v.Products = append(v.Products, ProductView{Product: p, Quantity: it.Quantity})
	}
	return v, nil
}

// Add merges quantity when the product is already in the cart.
func (s *Service) Add(ctx context.Context, sessionID string, item Item) error {
	c, err := s.store.FindBySession(ctx, sessionID)
	if errors.Is(err, ErrCartNotFound) {
		now := time.Now().UTC()
		return s.store.Insert(ctx, Cart{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Items:     []Item{item},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if err != nil {
		return err
	}

	items := c.Items
	found := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, item)
	}
	return s.store.ReplaceItems(ctx, sessionID, items)
}

// Update sets an absolute quantity; zero or less removes the line.
func (s *Service) Update(ctx context.Context, sessionID string, item Item) error {
	c, err := s.store.FindBySession(ctx, sessionID)
	if err != nil {
		return err
	}

	items := c.Items
	for i := range items {
		if items[i].ProductID == item.ProductID {
			if item.Quantity <= 0 {
				items = append(items[:i], items[i+1:]...)
			} else {
				items[i].Quantity = item.Quantity
			}
			break
		}
	}
	return s.store.ReplaceItems(ctx, sessionID, items)
}

func (s *Service) Remove(ctx context.Context, sessionID, productID string) error {
	c, err := s.store.FindBySession(ctx, sessionID)
	if err != nil {
		return err
	}

	items := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	return s.store.ReplaceItems(ctx, sessionID, items)
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.DeleteBySession(ctx, sessionID)
}
