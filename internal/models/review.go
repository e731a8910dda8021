package models

import "time"

// Review es una reseña de usuario. Nunca se muta; solo su autor puede borrarla.
// Un Reviewer vacío se normaliza al bucket anónimo dentro del agregador.
type Review struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ProductID string    `json:"product_id" bson:"product_id"`
	Reviewer  string    `json:"reviewer" bson:"reviewer"`
	Rating    int       `json:"rating" bson:"rating" binding:"required"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
