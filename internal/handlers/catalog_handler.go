package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-core/internal/cache"
	"storefront-core/internal/filter"
	"storefront-core/internal/models"
	"storefront-core/internal/rating"
)

// ProductSource es el colaborador de catálogo que consumen los handlers.
// Los tests inyectan un stub en memoria.
type ProductSource interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Taxonomy(ctx context.Context) (map[string]string, error)
	SoftDelete(ctx context.Context, id string) error
}

// ReviewSource es el colaborador de reseñas.
type ReviewSource interface {
	Create(ctx context.Context, review *models.Review) error
	ListByProduct(ctx context.Context, productID string) ([]models.Review, error)
	ListGroupedByProduct(ctx context.Context) (map[string][]models.Review, error)
	DeleteByAuthor(ctx context.Context, id, reviewer string) error
}

// ProductView es un producto más su rating agregado, listo para display.
type ProductView struct {
	models.Product
	Rating rating.Summary `json:"rating"`
}

type CatalogHandler struct {
	products ProductSource
	reviews  ReviewSource
	cache    *cache.Cache
}

func NewCatalogHandler(products ProductSource, reviews ReviewSource, c *cache.Cache) *CatalogHandler {
	return &CatalogHandler{
		products: products,
		reviews:  reviews,
		cache:    c,
	}
}

// ListProducts deriva la lista visible del catálogo según las facetas de la
// query (con caché)
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	cacheKey := "products:list:" + c.Request.URL.RawQuery

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	ctx := c.Request.Context()

	products, err := h.products.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	taxonomy, err := h.products.Taxonomy(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load taxonomy"})
		return
	}

	grouped, err := h.reviews.ListGroupedByProduct(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reviews"})
		return
	}

	summaries := make(map[string]rating.Summary, len(products))
	ratings := make(map[string]float64, len(products))
	for _, p := range products {
		summary := rating.Summarize(p.BaseRating, grouped[p.ID])
		summaries[p.ID] = summary
		ratings[p.ID] = summary.Average
	}

	state := stateFromQuery(c, filter.Taxonomy(taxonomy))
	visible := filter.Derive(products, state, ratings)

	views := make([]ProductView, 0, len(visible))
	for _, p := range visible {
		views = append(views, ProductView{Product: p, Rating: summaries[p.ID]})
	}

	response := gin.H{
		"data":  views,
		"total": len(views),
	}

	h.cache.Set(cacheKey, response, 2*time.Minute)
	c.JSON(http.StatusOK, response)
}

// GetProduct obtiene un producto con su rating agregado (con caché)
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	cacheKey := fmt.Sprintf("product:%s", productID)

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.products.FindByID(c.Request.Context(), productID)
	if err != nil {
		if err.Error() == "product not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	reviews, err := h.reviews.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reviews"})
		return
	}

	view := ProductView{
		Product: *product,
		Rating:  rating.Summarize(product.BaseRating, reviews),
	}

	h.cache.Set(cacheKey, view, 5*time.Minute)
	c.JSON(http.StatusOK, view)
}

// CreateProduct crea un nuevo producto
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var product models.Product

	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.products.Create(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	// Invalidar caché de listados
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusCreated, product)
}

// DeleteProduct realiza un borrado lógico
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if err := h.products.SoftDelete(c.Request.Context(), productID); err != nil {
		if err.Error() == "product not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	// Invalidar caché relacionado
	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// stateFromQuery arma el estado de facetas desde la query. Toda restricción
// ausente o malformada queda inactiva, nunca es un error.
func stateFromQuery(c *gin.Context, taxonomy filter.Taxonomy) *filter.State {
	state := filter.NewState()

	if category := c.Query("category"); category != "" {
		state.SetCategory(category)
	}
	for _, token := range c.QueryArray("subcategory") {
		state.ToggleSubcategory(token, taxonomy)
	}
	state.SetText(c.Query("q"))
	state.SetMinPrice(parseCents(c.Query("min_price")))
	state.SetMaxPrice(parseCents(c.Query("max_price")))
	state.SetAvailableOnly(c.Query("available") == "true")
	if minRating, err := strconv.ParseFloat(c.Query("min_rating"), 64); err == nil {
		state.SetMinRating(minRating)
	}
	state.SetSort(sortKey(c.DefaultQuery("sort_by", string(filter.SortRelevance))))

	return state
}

func parseCents(raw string) *int64 {
	if raw == "" {
		return nil
	}
	cents, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &cents
}

func sortKey(raw string) filter.SortKey {
	switch key := filter.SortKey(raw); key {
	case filter.SortPriceAsc, filter.SortPriceDesc, filter.SortRatingDesc:
		return key
	}
	return filter.SortRelevance
}
