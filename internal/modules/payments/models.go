package payments

import "time"

const (
	// session lifecycle status
	StatusPending  = "pending"
	StatusComplete = "complete"

	// settlement status
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Transaction records one checkout attempt, keyed one-to-one by the
// processor's session id. An order may accumulate several transactions
// across retries; at most one should ever reach paid.
type Transaction struct {
	ID            string            `bson:"id" json:"id"`
	SessionID     string            `bson:"session_id" json:"session_id"`
	OrderID       string            `bson:"order_id" json:"order_id"`
	Amount        float64           `bson:"amount" json:"amount"`
	Currency      string            `bson:"currency" json:"currency"`
	Status        string            `bson:"status" json:"status"`
	PaymentStatus string            `bson:"payment_status" json:"payment_status"`
	Metadata      map[string]string `bson:"metadata" json:"metadata"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `bson:"updated_at" json:"updated_at"`
}
