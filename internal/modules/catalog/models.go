package catalog

import "time"

type Category struct {
	ID        string    `bson:"id" json:"id"`
	NameFR    string    `bson:"name_fr" json:"name_fr"`
	NameTR    string    `bson:"name_tr" json:"name_tr"`
	NameEN    string    `bson:"name_en" json:"name_en"`
	Slug      string    `bson:"slug" json:"slug"`
	ImageURL  string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type Product struct {
	ID            string    `bson:"id" json:"id"`
	NameFR        string    `bson:"name_fr" json:"name_fr"`
	NameTR        string    `bson:"name_tr" json:"name_tr"`
	NameEN        string    `bson:"name_en" json:"name_en"`
	DescriptionFR string    `bson:"description_fr" json:"description_fr"`
	DescriptionTR string    `bson:"description_tr" json:"description_tr"`
	DescriptionEN string    `bson:"description_en" json:"description_en"`
	Price         float64   `bson:"price" json:"price"`
	CategoryID    string    `bson:"category_id" json:"category_id"`
	Images        []string  `bson:"images" json:"images"`
	Stock         int       `bson:"stock" json:"stock"`
	Featured      bool      `bson:"featured" json:"featured"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

type ProductInput struct {
	NameFR        string   `json:"name_fr" binding:"required"`
	NameTR        string   `json:"name_tr" binding:"required"`
	NameEN        string   `json:"name_en" binding:"required"`
	DescriptionFR string   `json:"description_fr"`
	DescriptionTR string   `json:"description_tr"`
	DescriptionEN string   `json:"description_en"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	CategoryID    string   `json:"category_id" binding:"required"`
	Images        []string `json:"images"`
	Stock         int      `json:"stock" binding:"omitempty,gte=0"`
	Featured      bool     `json:"featured"`
}
