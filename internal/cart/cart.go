package cart

import (
	"context"

	"storefront-core/internal/models"
	"storefront-core/internal/store"
)

// DefaultSlot es la clave del slot persistido cuando no se configura otra.
const DefaultSlot = "cart"

// Engine opera el carrito contra un slot persistido. Cada operación es un
// ciclo leer-modificar-escribir sobre la colección completa; un slot
// malformado se lee como carrito vacío (fail-open, ver store.ReadSlot).
type Engine struct {
	store store.Store
	slot  string
}

func NewEngine(s store.Store, slot string) *Engine {
	if slot == "" {
		slot = DefaultSlot
	}
	return &Engine{store: s, slot: slot}
}

// Items devuelve el contenido actual del carrito.
func (e *Engine) Items(ctx context.Context) []models.CartEntry {
	return store.ReadSlot(ctx, e.store, e.slot, []models.CartEntry{})
}

// Add incrementa en 1 la cantidad de la entrada del producto, creándola con
// cantidad 1 si no existe. Nunca duplica entradas para un mismo id.
func (e *Engine) Add(ctx context.Context, product models.Product) error {
	entries := e.Items(ctx)

	for i := range entries {
		if entries[i].Product.ID == product.ID {
			entries[i].Quantity++
			return store.WriteSlot(ctx, e.store, e.slot, entries)
		}
	}

	entries = append(entries, models.CartEntry{Product: product, Quantity: 1})
	return store.WriteSlot(ctx, e.store, e.slot, entries)
}

// SetQuantity fija la cantidad de la entrada del producto. Una cantidad <= 0
// elimina la entrada: nunca se persiste una entrada con cantidad cero.
func (e *Engine) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return e.Remove(ctx, productID)
	}

	entries := e.Items(ctx)
	for i := range entries {
		if entries[i].Product.ID == productID {
			entries[i].Quantity = quantity
			break
		}
	}
	return store.WriteSlot(ctx, e.store, e.slot, entries)
}

// Remove elimina la entrada del producto si existe; no-op si no está.
func (e *Engine) Remove(ctx context.Context, productID string) error {
	entries := e.Items(ctx)

	kept := entries[:0]
	for _, entry := range entries {
		if entry.Product.ID != productID {
			kept = append(kept, entry)
		}
	}
	return store.WriteSlot(ctx, e.store, e.slot, kept)
}

// Clear reemplaza el carrito por la colección vacía.
func (e *Engine) Clear(ctx context.Context) error {
	return store.WriteSlot(ctx, e.store, e.slot, []models.CartEntry{})
}

// Total suma precio*cantidad sobre todas las entradas encontradas, sin asumir
// orden ni unicidad de ids (robusto aunque el invariante se haya roto).
func (e *Engine) Total(ctx context.Context) int64 {
	var total int64
	for _, entry := range e.Items(ctx) {
		total += entry.Product.PriceCents * int64(entry.Quantity)
	}
	return total
}

// Summary devuelve las lecturas derivadas que consume la UI tras cada
// operación: cantidad total de ítems y total en centavos.
func (e *Engine) Summary(ctx context.Context) models.CartSummary {
	var summary models.CartSummary
	for _, entry := range e.Items(ctx) {
		summary.ItemCount += entry.Quantity
		summary.TotalCents += entry.Product.PriceCents * int64(entry.Quantity)
	}
	return summary
}
