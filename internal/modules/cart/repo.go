package cart

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repo struct {
	carts *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{carts: db.Collection("carts")}
}

func (r *Repo) FindBySession(ctx context.Context, sessionID string) (Cart, error) {
	var c Cart
	err := r.carts.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Cart{}, ErrCartNotFound
	}
	return c, err
}

func (r *Repo) Insert(ctx context.Context, c Cart) error {
	_, err := r.carts.InsertOne(ctx, c)
	return err
}

func (r *Repo) ReplaceItems(ctx context.Context, sessionID string, items []Item) error {
	_, err := r.carts.UpdateOne(ctx,
		bson.M{"session_id": sessionID},
		bson.M{"$set": bson.M{"items": items, "updated_at": time.Now().UTC()}},
	)
	return err
}

func (r *Repo) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.carts.DeleteOne(ctx, bson.M{"session_id": sessionID})
	return err
}
