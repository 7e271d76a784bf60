package orders

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repo struct {
	orders *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{orders: db.Collection("orders")}
}

func (r *Repo) Insert(ctx context.Context, o Order) error {
	_, err := r.orders.InsertOne(ctx, o)
	return err
}

func (r *Repo) FindByID(ctx context.Context, id string) (Order, error) {
	var o Order
	err := r.orders.FindOne(ctx, bson.M{"id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *Repo) ListAll(ctx context.Context) ([]Order, error) {
	cur, err := r.orders.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []Order{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(100)
	cur, err := r.orders.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	out := []Order{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) SetPaymentSession(ctx context.Context, orderID, sessionID string) error {
	res, err := r.orders.UpdateOne(ctx,
		bson.M{"id": orderID},
		bson.M{"$set": bson.M{"payment_session_id": sessionID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// MarkPaid only ever writes "paid"; calling it again is a no-op,
// so poll and webhook reconciliation may both land here.
func (r *Repo) MarkPaid(ctx context.Context, orderID string) error {
	_, err := r.orders.UpdateOne(ctx,
		bson.M{"id": orderID},
		bson.M{"$set": bson.M{"status": StatusPaid}},
	)
	return err
}
