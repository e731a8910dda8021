package models

// CartEntry guarda un snapshot del producto más la cantidad acumulada.
// Invariante: a lo sumo una entrada por producto, con Quantity >= 1.
type CartEntry struct {
	Product  Product `json:"product" bson:"product"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// CartSummary es la lectura derivada que consumen las superficies de UI
// (badge de cantidad y total del carrito).
type CartSummary struct {
	ItemCount  int   `json:"item_count"`
	TotalCents int64 `json:"total_cents"`
}
