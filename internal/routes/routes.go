package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-core/internal/cache"
	"storefront-core/internal/cart"
	"storefront-core/internal/handlers"
	"storefront-core/internal/repository"
	"storefront-core/internal/store"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database, cartStore store.Store, cartSlot string) {
	products := repository.NewProductRepository(db.Collection("products"))
	reviews := repository.NewReviewRepository(db.Collection("reviews"))

	responseCache := cache.New(5 * time.Minute)
	engine := cart.NewEngine(cartStore, cartSlot)

	catalogHandler := handlers.NewCatalogHandler(products, reviews, responseCache)
	reviewHandler := handlers.NewReviewHandler(products, reviews, responseCache)
	cartHandler := handlers.NewCartHandler(engine, products)

	v1 := router.Group("/v1")
	{
		v1.GET("/products", catalogHandler.ListProducts)
		v1.POST("/products", catalogHandler.CreateProduct)
		v1.GET("/products/:id", catalogHandler.GetProduct)
		v1.DELETE("/products/:id", catalogHandler.DeleteProduct)

		v1.GET("/products/:id/reviews", reviewHandler.ListReviews)
		v1.POST("/products/:id/reviews", reviewHandler.CreateReview)
		v1.DELETE("/products/:id/reviews/:reviewID", reviewHandler.DeleteReview)

		v1.GET("/cart", cartHandler.GetCart)
		v1.POST("/cart/items", cartHandler.AddItem)
		v1.PATCH("/cart/items/:id", cartHandler.UpdateItem)
		v1.DELETE("/cart/items/:id", cartHandler.RemoveItem)
		v1.DELETE("/cart", cartHandler.ClearCart)
	}
}
