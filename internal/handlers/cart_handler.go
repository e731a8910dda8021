package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-core/internal/cart"
)

type CartHandler struct {
	engine   *cart.Engine
	products ProductSource
}

func NewCartHandler(engine *cart.Engine, products ProductSource) *CartHandler {
	return &CartHandler{
		engine:   engine,
		products: products,
	}
}

type addItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type setQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// cartResponse arma la respuesta estándar: contenido + lecturas derivadas
// (cantidad de ítems y total), frescas después de cada operación.
func (h *CartHandler) cartResponse(c *gin.Context, status int) {
	ctx := c.Request.Context()
	c.JSON(status, gin.H{
		"data":    h.engine.Items(ctx),
		"summary": h.engine.Summary(ctx),
	})
}

// GetCart devuelve el contenido actual del carrito
func (h *CartHandler) GetCart(c *gin.Context) {
	h.cartResponse(c, http.StatusOK)
}

// AddItem agrega una unidad del producto al carrito (idempotente por id:
// si ya está, solo incrementa la cantidad)
func (h *CartHandler) AddItem(c *gin.Context) {
	var input addItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.FindByID(c.Request.Context(), input.ProductID)
	if err != nil {
		if err.Error() == "product not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	if err := h.engine.Add(c.Request.Context(), *product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	h.cartResponse(c, http.StatusOK)
}

// UpdateItem fija la cantidad de una entrada; cantidad 0 la elimina
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var input setQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.engine.SetQuantity(c.Request.Context(), c.Param("id"), *input.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	h.cartResponse(c, http.StatusOK)
}

// RemoveItem elimina la entrada del producto; no-op si no estaba
func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.engine.Remove(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	h.cartResponse(c, http.StatusOK)
}

// ClearCart vacía el carrito de una sola vez
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.engine.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	h.cartResponse(c, http.StatusOK)
}
