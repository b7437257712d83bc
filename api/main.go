package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/camila-fonseca/aroma-atelier/internal/ai"
	"github.com/camila-fonseca/aroma-atelier/internal/alert"
	"github.com/camila-fonseca/aroma-atelier/internal/auth"
	"github.com/camila-fonseca/aroma-atelier/internal/config"
	"github.com/camila-fonseca/aroma-atelier/internal/db"
	router "github.com/camila-fonseca/aroma-atelier/internal/http"
	"github.com/camila-fonseca/aroma-atelier/internal/http/handlers"
	rl "github.com/camila-fonseca/aroma-atelier/internal/http/rate_limiter"
	"github.com/camila-fonseca/aroma-atelier/internal/redissvc"
	"github.com/camila-fonseca/aroma-atelier/internal/repo"
)

// @title Aroma Atelier API
// @version 1.0
// @description REST API for the candle workshop: inventory, products with recipes, sales, orders and production calculators.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env file: %v", err)
	}

	cfg, err := config.Load(os.Getenv("ATELIER_CONFIG"))
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	go auth.StartRefreshTokenCleaner(30 * time.Minute)
	go rl.StartVisitorCleanupLoop()

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, oversell alerting disabled: %v", cfg.Redis.Addr, err)
	} else {
		defer rdb.Close()
		alert.SetRedisService(redissvc.NewRedisService(rdb, ctx))
		go alert.StartDailyOversellSummary(24 * time.Hour)
	}

	database, err := db.Connect(cfg.Postgres.URL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database, "migrations"); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}

	handlers.SetInventoryRepo(repo.NewPostgresInventoryRepository(database))
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetSaleRepo(repo.NewPostgresSaleRepository(database))
	handlers.SetOrderRepo(repo.NewPostgresOrderRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetSummaryRepo(repo.NewPostgresSummaryRepository(database))
	handlers.SetAssistant(ai.NewClient(cfg.Assistant.APIKey))

	r := router.NewRouter(cfg.Metrics.Enabled)
	log.Printf("server running on %s", cfg.HTTP.Addr)
	if err := http.ListenAndServe(cfg.HTTP.Addr, r); err != nil {
		log.Fatal(err)
	}
}
