package rating

import (
	"math"
	"strings"

	"storefront-core/internal/models"
)

// AnonymousReviewer es el bucket compartido para reseñas sin identificador:
// N reseñas anónimas cuentan como un único reviewer, no como N.
const AnonymousReviewer = "anonymous"

// Summary es la estadística agregada de reseñas de un producto.
type Summary struct {
	Average         float64 `json:"average"`
	TotalReviews    int     `json:"total_reviews"`
	UniqueReviewers int     `json:"unique_reviewers"`
	// Histogram[i] cuenta reviewers cuya media propia redondea a i+1 estrellas.
	Histogram [5]int `json:"histogram"`
}

// Summarize agrega reseñas deduplicando por reviewer: cada reviewer aporta un
// único voto igual a la media aritmética de sus propias reseñas, y el promedio
// del producto es la media de esas medias (peso igual por reviewer, sin
// importar cuántas reseñas publicó).
//
// El histograma se construye redondeando cada media por-reviewer al entero más
// cercano; el promedio agregado usa las medias sin redondear. La asimetría es
// intencional: evita que un usuario infle estadísticas repitiendo reseñas,
// manteniendo buckets discretos de estrellas para display.
func Summarize(baseRating float64, reviews []models.Review) Summary {
	if len(reviews) == 0 {
		return Summary{Average: baseRating}
	}

	type group struct {
		sum   int
		count int
	}
	byReviewer := make(map[string]*group)
	for _, review := range reviews {
		reviewer := strings.TrimSpace(review.Reviewer)
		if reviewer == "" {
			reviewer = AnonymousReviewer
		}
		g, found := byReviewer[reviewer]
		if !found {
			g = &group{}
			byReviewer[reviewer] = g
		}
		// Sin validación de rango acá: un rating fuera de 1–5 entra a la
		// media propia del reviewer y solo queda fuera del histograma
		g.sum += review.Rating
		g.count++
	}

	summary := Summary{
		TotalReviews:    len(reviews),
		UniqueReviewers: len(byReviewer),
	}

	var meanOfMeans float64
	for _, g := range byReviewer {
		mean := float64(g.sum) / float64(g.count)
		meanOfMeans += mean

		bucket := int(math.Round(mean))
		if bucket >= 1 && bucket <= 5 {
			summary.Histogram[bucket-1]++
		}
	}
	summary.Average = meanOfMeans / float64(len(byReviewer))

	return summary
}
