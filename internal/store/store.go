package store

import (
	"context"
	"encoding/json"
)

// Store es un slot durable clave-valor. Se inyecta como capability a los
// motores que persisten estado (carrito), nunca como singleton de paquete.
type Store interface {
	// Read devuelve el contenido crudo del slot; (nil, nil) si el slot no existe.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write sobreescribe el slot completo. Última escritura gana.
	Write(ctx context.Context, key string, data []byte) error
}

// ReadSlot lee y deserializa un slot, degradando a fallback ante slot ausente,
// vacío, ilegible o con JSON corrupto. Nunca devuelve error: la política del
// core es fail-open sobre estado persistido malformado.
func ReadSlot[T any](ctx context.Context, s Store, key string, fallback T) T {
	data, err := s.Read(ctx, key)
	if err != nil || len(data) == 0 {
		return fallback
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return fallback
	}
	return value
}

// WriteSlot serializa y sobreescribe el slot sin condiciones.
func WriteSlot[T any](ctx context.Context, s Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Write(ctx, key, data)
}
