package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"storefront-core/internal/config"
	"storefront-core/internal/database"
	"storefront-core/internal/routes"
	"storefront-core/internal/store"
)

func main() {
	cfg := config.LoadConfig()
	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	cartStore := buildCartStore(cfg)

	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, db, cartStore, cfg.CartSlot)

	log.Println("🚀 Server running on port", cfg.Port)
	router.Run(":" + cfg.Port)
}

// buildCartStore elige el backend del slot del carrito: Redis si hay URL
// configurada, memoria del proceso si no.
func buildCartStore(cfg *config.Config) store.Store {
	if cfg.RedisURL == "" {
		log.Println("⚠️ REDIS_URL not set, cart slot kept in process memory")
		return store.NewMemoryStore()
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("❌ invalid REDIS_URL:", err)
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ failed to connect to Redis:", err)
	}

	log.Println("✅ Connected to Redis, cart slot is durable")
	return store.NewRedisStore(rdb)
}
