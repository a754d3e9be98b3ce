package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hpham16/server-shopapp/docs"
	"github.com/hpham16/server-shopapp/internal/config"
	"github.com/hpham16/server-shopapp/internal/dwh"
	"github.com/hpham16/server-shopapp/internal/httpx"
	"github.com/hpham16/server-shopapp/internal/order"
	"github.com/hpham16/server-shopapp/internal/pagination"
)

// @title        shopapp order API
// @version      1.0
// @description  Order management and sales reporting for the shop backend.
// @BasePath     /api/v1
func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	var pub order.EventPublisher
	if cfg.RabbitMQURL != "" {
		p, err := dwh.NewPublisher(cfg.RabbitMQURL, cfg.OrderEventQueue)
		if err != nil {
			log.Printf("warehouse events disabled: %v", err)
		} else {
			defer p.Close()
			pub = p
		}
	}

	svc := order.NewService(order.NewPGRepo(pool), pub, pagination.DefaultSort())

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.Metrics())
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if cfg.PrometheusEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r.Group(cfg.APIPrefix), svc)

	log.Printf("server-shopapp listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
