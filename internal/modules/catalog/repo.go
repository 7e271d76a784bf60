package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repo struct {
	categories *mongo.Collection
	products   *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{
		categories: db.Collection("categories"),
		products:   db.Collection("products"),
	}
}

func (r *Repo) ListCategories(ctx context.Context) ([]Category, error) {
	cur, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []Category{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) InsertCategory(ctx context.Context, c Category) error {
	_, err := r.categories.InsertOne(ctx, c)
	return err
}

func (r *Repo) CountCategories(ctx context.Context) (int64, error) {
	return r.categories.CountDocuments(ctx, bson.M{})
}

type ProductFilter struct {
	CategoryID string
	Featured   *bool
}

func (r *Repo) ListProducts(ctx context.Context, f ProductFilter) ([]Product, error) {
	q := bson.M{}
	if f.CategoryID != "" {
		q["category_id"] = f.CategoryID
	}
	if f.Featured != nil {
		q["featured"] = *f.Featured
	}

	cur, err := r.products.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	out := []Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) FindProduct(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.products.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *Repo) InsertProduct(ctx context.Context, p Product) error {
	_, err := r.products.InsertOne(ctx, p)
	return err
}

func (r *Repo) UpdateProduct(ctx context.Context, id string, patch bson.M) error {
	res, err := r.products.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *Repo) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.products.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *Repo) AppendProductImage(ctx context.Context, id, url string) error {
	res, err := r.products.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$push": bson.M{"images": url}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}
