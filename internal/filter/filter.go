package filter

import (
	"sort"
	"strings"

	"storefront-core/internal/models"
)

// CategoryAll es el selector de categoría que deja pasar todo el catálogo.
const CategoryAll = "all"

// AllTokenPrefix antecede al id de categoría en el token centinela
// "todas las subcategorías de <cat>".
const AllTokenPrefix = "ALL-"

// SortKey identifica el comparador aplicado al final de la derivación.
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortRatingDesc SortKey = "rating_desc"
)

// Taxonomy mapea id de subcategoría -> id de su categoría dueña. La provee el
// catálogo; los toggles la necesitan para limpiar tokens de la misma categoría.
type Taxonomy map[string]string

// State es el estado efímero de facetas de la UI. Cada restricción inactiva
// (puntero nil, string vacío, flag apagado) deja pasar todo: fail-open.
type State struct {
	Category      string
	Subcategories map[string]struct{}
	Text          string
	MinPrice      *int64
	MaxPrice      *int64
	AvailableOnly bool
	MinRating     float64
	Sort          SortKey
}

// NewState devuelve el estado con los defaults de arranque de la UI.
func NewState() *State {
	return &State{
		Category:      CategoryAll,
		Subcategories: make(map[string]struct{}),
		Sort:          SortRelevance,
	}
}

// Reset vuelve a los defaults en una sola acción (botón "limpiar filtros").
func (s *State) Reset() {
	*s = *NewState()
}

// SetCategory selecciona una categoría concreta o el centinela "all".
// Siempre vacía el set de subcategorías, sin condiciones.
func (s *State) SetCategory(categoryID string) {
	s.Category = categoryID
	s.Subcategories = make(map[string]struct{})
}

// ToggleSubcategory alterna un token del set de subcategorías:
//
//   - un token ALL-<cat> ya presente simplemente se quita; si no estaba, se
//     agrega quitando antes todo token concreto de esa categoría;
//   - un token concreto quita primero el ALL-<cat> de su categoría dueña y
//     después se alterna (toggle puro).
//
// Tokens de otras categorías no se tocan nunca.
func (s *State) ToggleSubcategory(token string, taxonomy Taxonomy) {
	if cat, isAll := strings.CutPrefix(token, AllTokenPrefix); isAll {
		if _, present := s.Subcategories[token]; present {
			delete(s.Subcategories, token)
			return
		}
		for existing := range s.Subcategories {
			if taxonomy[existing] == cat {
				delete(s.Subcategories, existing)
			}
		}
		s.Subcategories[token] = struct{}{}
		return
	}

	// Token concreto: el centinela de su categoría deja de aplicar
	if cat, known := taxonomy[token]; known {
		delete(s.Subcategories, AllTokenPrefix+cat)
	}
	if _, present := s.Subcategories[token]; present {
		delete(s.Subcategories, token)
	} else {
		s.Subcategories[token] = struct{}{}
	}
}

func (s *State) SetText(text string) {
	s.Text = text
}

// SetMinPrice activa la cota inferior de precio; nil la desactiva.
func (s *State) SetMinPrice(cents *int64) {
	s.MinPrice = cents
}

// SetMaxPrice activa la cota superior de precio; nil la desactiva.
func (s *State) SetMaxPrice(cents *int64) {
	s.MaxPrice = cents
}

func (s *State) SetAvailableOnly(only bool) {
	s.AvailableOnly = only
}

func (s *State) SetMinRating(min float64) {
	s.MinRating = min
}

func (s *State) SetSort(key SortKey) {
	s.Sort = key
}

// Derive reduce el catálogo a la lista visible: conjunción de todas las
// restricciones activas en orden fijo y una única pasada de ordenamiento
// estable al final. ratings aporta el rating agregado por producto; un id
// ausente (o un mapa nil) cae al BaseRating del producto.
func Derive(products []models.Product, s *State, ratings map[string]float64) []models.Product {
	text := strings.ToLower(strings.TrimSpace(s.Text))

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !passesCategory(p, s) {
			continue
		}
		if text != "" && !strings.Contains(strings.ToLower(p.Name), text) {
			continue
		}
		if s.MinPrice != nil && p.PriceCents < *s.MinPrice {
			continue
		}
		if s.MaxPrice != nil && p.PriceCents > *s.MaxPrice {
			continue
		}
		if s.AvailableOnly && !p.Available {
			continue
		}
		if s.MinRating > 0 && ratingOf(p, ratings) < s.MinRating {
			continue
		}
		result = append(result, p)
	}

	switch s.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PriceCents < result[j].PriceCents
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PriceCents > result[j].PriceCents
		})
	case SortRatingDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return ratingOf(result[i], ratings) > ratingOf(result[j], ratings)
		})
	}
	// SortRelevance: orden de entrada intacto

	return result
}

// passesCategory aplica el gate jerárquico: con subcategorías seleccionadas
// manda el set de tokens; sin ellas, manda el selector de categoría.
func passesCategory(p models.Product, s *State) bool {
	if len(s.Subcategories) > 0 {
		if _, ok := s.Subcategories[AllTokenPrefix+p.CategoryID]; ok {
			return true
		}
		if p.SubcategoryID != "" {
			if _, ok := s.Subcategories[p.SubcategoryID]; ok {
				return true
			}
		}
		return false
	}
	return s.Category == CategoryAll || p.CategoryID == s.Category
}

func ratingOf(p models.Product, ratings map[string]float64) float64 {
	if r, found := ratings[p.ID]; found {
		return r
	}
	return p.BaseRating
}
