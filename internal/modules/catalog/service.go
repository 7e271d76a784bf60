package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service { return &Service{repo: repo} }

func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, c Category) (Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.InsertCategory(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *Service) Products(ctx context.Context, f ProductFilter) ([]Product, error) {
	return s.repo.ListProducts(ctx, f)
}

func (s *Service) Product(ctx context.Context, id string) (Product, error) {
	return s.repo.FindProduct(ctx, id)
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	p := Product{
		ID:            uuid.NewString(),
		NameFR:        in.NameFR,
		NameTR:        in.NameTR,
		NameEN:        in.NameEN,
		DescriptionFR: in.DescriptionFR,
		DescriptionTR: in.DescriptionTR,
		DescriptionEN: in.DescriptionEN,
		Price:         in.Price,
		CategoryID:    in.CategoryID,
		Images:        in.Images,
		Stock:         in.Stock,
		Featured:      in.Featured,
		CreatedAt:     time.Now().UTC(),
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if err := s.repo.InsertProduct(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (Product, error) {
	patch := bson.M{
		"name_fr":        in.NameFR,
		"name_tr":        in.NameTR,
		"name_en":        in.NameEN,
		"description_fr": in.DescriptionFR,
		"description_tr": in.DescriptionTR,
		"description_en": in.DescriptionEN,
		"price":          in.Price,
		"category_id":    in.CategoryID,
		"images":         in.Images,
		"stock":          in.Stock,
		"featured":       in.Featured,
	}
	if err := s.repo.UpdateProduct(ctx, id, patch); err != nil {
		return Product{}, err
	}
	return s.repo.FindProduct(ctx, id)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *Service) AttachProductImage(ctx context.Context, id, url string) error {
	return s.repo.AppendProductImage(ctx, id, url)
}
