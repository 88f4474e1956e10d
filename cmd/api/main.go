package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/barberflow/barberflow-api/internal/config"
	"github.com/barberflow/barberflow-api/internal/db"
	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/infra/slotindex"
	"github.com/barberflow/barberflow-api/internal/middleware"
	"github.com/barberflow/barberflow-api/internal/routes"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)

	var rdb *redis.Client
	var slots domain.SlotIndex
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("redis indisponível (%v), usando índice de slots em memória", err)
			rdb = nil
		}
	}
	if rdb != nil {
		slots = slotindex.NewRedisIndex(rdb)
	} else {
		slots = slotindex.NewMemoryIndex()
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, rdb, slots, cfg)

	log.Printf("servidor ouvindo em %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("erro ao iniciar servidor: %v", err)
	}
}
