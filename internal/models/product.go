package models

import "time"

// Product representa un producto del catálogo tal como lo consume el storefront.
// Los motores de filtrado y rating nunca lo mutan; es propiedad del catálogo.
type Product struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	SKU           string    `json:"sku,omitempty" bson:"sku,omitempty"`
	Name          string    `json:"name" bson:"name" binding:"required"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	CategoryID    string    `json:"category_id" bson:"category_id" binding:"required"`
	SubcategoryID string    `json:"subcategory_id,omitempty" bson:"subcategory_id,omitempty"`
	PriceCents    int64     `json:"price_cents" bson:"price_cents" binding:"required"`
	Currency      string    `json:"currency,omitempty" bson:"currency,omitempty"`
	BaseRating    float64   `json:"base_rating" bson:"base_rating"`
	Available     bool      `json:"available" bson:"available"`
	Images        []string  `json:"images,omitempty" bson:"images,omitempty"`
	IsDeleted     bool      `json:"-" bson:"is_deleted"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
