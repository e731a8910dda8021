package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-core/internal/cache"
	"storefront-core/internal/models"
	"storefront-core/internal/rating"
)

type ReviewHandler struct {
	products ProductSource
	reviews  ReviewSource
	cache    *cache.Cache
}

func NewReviewHandler(products ProductSource, reviews ReviewSource, c *cache.Cache) *ReviewHandler {
	return &ReviewHandler{
		products: products,
		reviews:  reviews,
		cache:    c,
	}
}

type reviewInput struct {
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

// ListReviews lista las reseñas de un producto junto con su estadística agregada
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	productID := c.Param("id")

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

	c.JSON(http.StatusOK, gin.H{
		"data":    reviews,
		"summary": rating.Summarize(product.BaseRating, reviews),
	})
}

// CreateReview agrega una reseña a un producto. Un reviewer vacío se agrega
// igual: el agregador lo colapsa al bucket anónimo.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	productID := c.Param("id")

	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.products.FindByID(c.Request.Context(), productID); err != nil {
		if err.Error() == "product not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	review := models.Review{
		ProductID: productID,
		Reviewer:  input.Reviewer,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := h.reviews.Create(c.Request.Context(), &review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}

	// El rating agregado cambió: invalidar las vistas que lo embeben
	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusCreated, review)
}

// DeleteReview borra una reseña, solo si quien la pide es su autor
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	productID := c.Param("id")
	reviewID := c.Param("reviewID")

	reviewer := c.GetHeader("X-Reviewer")
	if reviewer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Reviewer header"})
		return
	}

	if err := h.reviews.DeleteByAuthor(c.Request.Context(), reviewID, reviewer); err != nil {
		if err.Error() == "review not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}

	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
