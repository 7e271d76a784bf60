package payments

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repo struct {
	txs *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{txs: db.Collection("payment_transactions")}
}

func (r *Repo) Insert(ctx context.Context, t Transaction) error {
	_, err := r.txs.InsertOne(ctx, t)
	return err
}

func (r *Repo) FindBySession(ctx context.Context, sessionID string) (Transaction, error) {
	var t Transaction
	err := r.txs.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Transaction{}, ErrTransactionNotFound
	}
	return t, err
}

// ApplyStatus is a compare-and-set: the write lands only while the stored
// payment_status is not yet paid. A stale read can therefore never downgrade
// a transaction another reconciliation already settled.
func (r *Repo) ApplyStatus(ctx context.Context, sessionID, status, paymentStatus string) (bool, error) {
	res, err := r.txs.UpdateOne(ctx,
		bson.M{"session_id": sessionID, "payment_status": bson.M{"$ne": PaymentPaid}},
		bson.M{"$set": bson.M{
			"status":         status,
			"payment_status": paymentStatus,
			"updated_at":     time.Now().UTC(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
