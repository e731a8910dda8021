package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key reads as nil without error", func(t *testing.T) {
		s := NewMemoryStore()
		data, err := s.Read(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("write then read roundtrips", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.Write(ctx, "k", []byte(`"hola"`)))

		data, err := s.Read(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`"hola"`), data)
	})

	t.Run("last write wins", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.Write(ctx, "k", []byte("1")))
		require.NoError(t, s.Write(ctx, "k", []byte("2")))

		data, err := s.Read(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), data)
	})

	t.Run("stored bytes are independent of the caller buffer", func(t *testing.T) {
		s := NewMemoryStore()
		buf := []byte("abc")
		require.NoError(t, s.Write(ctx, "k", buf))
		buf[0] = 'z'

		data, err := s.Read(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), data)
	})
}

func TestReadSlot(t *testing.T) {
	ctx := context.Background()
	fallback := payload{Name: "default"}

	t.Run("absent slot degrades to fallback", func(t *testing.T) {
		s := NewMemoryStore()
		got := ReadSlot(ctx, s, "nope", fallback)
		assert.Equal(t, fallback, got)
	})

	t.Run("empty slot degrades to fallback", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.Write(ctx, "k", nil))

		got := ReadSlot(ctx, s, "k", fallback)
		assert.Equal(t, fallback, got)
	})

	t.Run("corrupt JSON degrades to fallback", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.Write(ctx, "k", []byte("{truncado")))

		got := ReadSlot(ctx, s, "k", fallback)
		assert.Equal(t, fallback, got)
	})

	t.Run("type mismatch degrades to fallback", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.Write(ctx, "k", []byte(`[1,2,3]`)))

		got := ReadSlot(ctx, s, "k", fallback)
		assert.Equal(t, fallback, got)
	})

	t.Run("roundtrip through WriteSlot", func(t *testing.T) {
		s := NewMemoryStore()
		want := payload{Name: "carrito", Count: 2}
		require.NoError(t, WriteSlot(ctx, s, "k", want))

		got := ReadSlot(ctx, s, "k", payload{})
		assert.Equal(t, want, got)
	})
}
