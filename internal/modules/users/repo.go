package users

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repo struct {
	users *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{users: db.Collection("users")}
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *Repo) FindByID(ctx context.Context, id string) (User, error) {
	var u User
	err := r.users.FindOne(ctx, bson.M{"id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *Repo) Insert(ctx context.Context, u User) error {
	_, err := r.users.InsertOne(ctx, u)
	return err
}

func (r *Repo) UpdateProfile(ctx context.Context, id string, patch bson.M) error {
	if len(patch) == 0 {
		return nil
	}
	_, err := r.users.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	return err
}
