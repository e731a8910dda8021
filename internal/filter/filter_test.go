package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-core/internal/models"
)

var testTaxonomy = Taxonomy{
	"MA": "CO", // mouse -> computación
	"TE": "CO", // teclados -> computación
	"PS": "PE", // pecera -> periféricos (otra categoría)
}

func tokens(s *State) []string {
	out := make([]string, 0, len(s.Subcategories))
	for t := range s.Subcategories {
		out = append(out, t)
	}
	return out
}

func TestToggleSubcategory(t *testing.T) {
	t.Run("ALL token strips concrete tokens of its category", func(t *testing.T) {
		s := NewState()
		s.ToggleSubcategory("MA", testTaxonomy)
		s.ToggleSubcategory("TE", testTaxonomy)
		s.ToggleSubcategory("ALL-CO", testTaxonomy)

		assert.ElementsMatch(t, []string{"ALL-CO"}, tokens(s))
	})

	t.Run("concrete token strips the ALL token of its owning category", func(t *testing.T) {
		s := NewState()
		s.ToggleSubcategory("ALL-CO", testTaxonomy)
		s.ToggleSubcategory("MA", testTaxonomy)

		assert.ElementsMatch(t, []string{"MA"}, tokens(s))
	})

	t.Run("cross-category independence", func(t *testing.T) {
		s := NewState()
		s.ToggleSubcategory("ALL-CO", testTaxonomy)
		s.ToggleSubcategory("PS", testTaxonomy)

		assert.ElementsMatch(t, []string{"ALL-CO", "PS"}, tokens(s))
	})

	t.Run("retoggling ALL token removes it", func(t *testing.T) {
		s := NewState()
		s.ToggleSubcategory("ALL-CO", testTaxonomy)
		s.ToggleSubcategory("ALL-CO", testTaxonomy)

		assert.Empty(t, tokens(s))
	})

	t.Run("retoggling concrete token removes it", func(t *testing.T) {
		s := NewState()
		s.ToggleSubcategory("MA", testTaxonomy)
		s.ToggleSubcategory("MA", testTaxonomy)

		assert.Empty(t, tokens(s))
	})

	t.Run("unknown token still toggles without touching others", func(t *testing.T) {
		s := NewState()
		s.ToggleSubcategory("ALL-CO", testTaxonomy)
		s.ToggleSubcategory("XX", testTaxonomy)

		assert.ElementsMatch(t, []string{"ALL-CO", "XX"}, tokens(s))
	})
}

func TestSetCategory(t *testing.T) {
	s := NewState()
	s.ToggleSubcategory("MA", testTaxonomy)
	s.ToggleSubcategory("PS", testTaxonomy)

	s.SetCategory("CO")

	assert.Equal(t, "CO", s.Category)
	assert.Empty(t, tokens(s), "seleccionar categoría concreta vacía el set de subcategorías")
}

func TestReset(t *testing.T) {
	s := NewState()
	s.SetCategory("CO")
	s.SetText("play")
	min := int64(1000)
	s.SetMinPrice(&min)
	s.SetAvailableOnly(true)
	s.SetMinRating(4)
	s.SetSort(SortPriceAsc)

	s.Reset()

	assert.Equal(t, CategoryAll, s.Category)
	assert.Empty(t, tokens(s))
	assert.Empty(t, s.Text)
	assert.Nil(t, s.MinPrice)
	assert.Nil(t, s.MaxPrice)
	assert.False(t, s.AvailableOnly)
	assert.Zero(t, s.MinRating)
	assert.Equal(t, SortRelevance, s.Sort)
}

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: "1", Name: "PlayStation 5", CategoryID: "CO", SubcategoryID: "MA", PriceCents: 10000, BaseRating: 4.5, Available: true},
		{ID: "2", Name: "Xbox", CategoryID: "PE", SubcategoryID: "PS", PriceCents: 20000, BaseRating: 3.0, Available: false},
		{ID: "3", Name: "Teclado mecánico", CategoryID: "CO", SubcategoryID: "TE", PriceCents: 20000, BaseRating: 5.0, Available: true},
	}
}

func TestDerive(t *testing.T) {
	products := catalogFixture()

	t.Run("default state passes everything in input order", func(t *testing.T) {
		got := Derive(products, NewState(), nil)
		require.Len(t, got, 3)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "2", got[1].ID)
		assert.Equal(t, "3", got[2].ID)
	})

	t.Run("min price excludes cheaper products", func(t *testing.T) {
		s := NewState()
		min := int64(15000)
		s.SetMinPrice(&min)

		got := Derive(products[:2], s, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("max price excludes dearer products", func(t *testing.T) {
		s := NewState()
		max := int64(15000)
		s.SetMaxPrice(&max)

		got := Derive(products, s, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("text match is case-insensitive substring on name", func(t *testing.T) {
		s := NewState()
		s.SetText("play")

		got := Derive(products, s, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "PlayStation 5", got[0].Name)
	})

	t.Run("availability flag keeps only available products", func(t *testing.T) {
		s := NewState()
		s.SetAvailableOnly(true)

		got := Derive(products, s, nil)
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("concrete category requires exact match", func(t *testing.T) {
		s := NewState()
		s.SetCategory("CO")

		got := Derive(products, s, nil)
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("ALL token passes the whole category", func(t *testing.T) {
		s := NewState()
		s.ToggleSubcategory("ALL-CO", testTaxonomy)

		got := Derive(products, s, nil)
		require.Len(t, got, 2)
	})

	t.Run("concrete subcategory token passes only its products", func(t *testing.T) {
		s := NewState()
		s.ToggleSubcategory("TE", testTaxonomy)

		got := Derive(products, s, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
	})

	t.Run("rating gate uses supplied ratings with base fallback", func(t *testing.T) {
		s := NewState()
		s.SetMinRating(4)

		// id 2 sube por reseñas, id 1 cae al BaseRating, id 3 usa el suyo
		ratings := map[string]float64{"2": 4.2}
		got := Derive(products, s, ratings)
		require.Len(t, got, 3)

		got = Derive(products, s, nil)
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("sort price ascending", func(t *testing.T) {
		s := NewState()
		s.SetSort(SortPriceAsc)

		got := Derive(products, s, nil)
		require.Len(t, got, 3)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("sort price descending is stable on ties", func(t *testing.T) {
		s := NewState()
		s.SetSort(SortPriceDesc)

		got := Derive(products, s, nil)
		require.Len(t, got, 3)
		// 2 y 3 empatan en precio: conservan su orden relativo de entrada
		assert.Equal(t, "2", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
		assert.Equal(t, "1", got[2].ID)
	})

	t.Run("sort rating descending", func(t *testing.T) {
		s := NewState()
		s.SetSort(SortRatingDesc)

		got := Derive(products, s, nil)
		require.Len(t, got, 3)
		assert.Equal(t, "3", got[0].ID)
		assert.Equal(t, "1", got[1].ID)
		assert.Equal(t, "2", got[2].ID)
	})

	t.Run("never mutates the input collection", func(t *testing.T) {
		s := NewState()
		s.SetSort(SortPriceDesc)

		Derive(products, s, nil)
		assert.Equal(t, "1", products[0].ID)
		assert.Equal(t, "2", products[1].ID)
		assert.Equal(t, "3", products[2].ID)
	})
}
