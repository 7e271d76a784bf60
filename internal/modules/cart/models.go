package cart

import "time"

type Item struct {
	ProductID string `bson:"product_id" json:"product_id" binding:"required"`
	Quantity  int    `bson:"quantity" json:"quantity" binding:"required"`
}

type Cart struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"session_id" json:"session_id"`
	Items     []Item    `bson:"items" json:"items"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
