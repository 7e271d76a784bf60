package orders

import "time"

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Item is a line snapshot taken at order creation. Price, names and
// subtotal are frozen; later catalog edits never change an order.
type Item struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	NameFR    string  `bson:"name_fr" json:"name_fr"`
	NameTR    string  `bson:"name_tr" json:"name_tr"`
	NameEN    string  `bson:"name_en" json:"name_en"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Subtotal  float64 `bson:"subtotal" json:"subtotal"`
}

type Order struct {
	ID               string    `bson:"id" json:"id"`
	UserID           string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CustomerName     string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail    string    `bson:"customer_email" json:"customer_email"`
	CustomerPhone    string    `bson:"customer_phone" json:"customer_phone"`
	CustomerAddress  string    `bson:"customer_address" json:"customer_address"`
	Items            []Item    `bson:"items" json:"items"`
	Total            float64   `bson:"total" json:"total"`
	Status           string    `bson:"status" json:"status"`
	PaymentSessionID string    `bson:"payment_session_id,omitempty" json:"payment_session_id,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

type CreateInput struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	CustomerAddress string `json:"customer_address" binding:"required"`
	CartSessionID   string `json:"cart_session_id" binding:"required"`
}
