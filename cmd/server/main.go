package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/online-market/internal/config"     // Internal config loader
	"github.com/iliyamo/online-market/internal/database"   // MySQL connection pool
	"github.com/iliyamo/online-market/internal/handler"    // HTTP handlers
	"github.com/iliyamo/online-market/internal/middleware" // cache + rate limit middleware
	"github.com/iliyamo/online-market/internal/queue"      // order event consumer
	"github.com/iliyamo/online-market/internal/repository" // DB repositories
	"github.com/iliyamo/online-market/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env vars win
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName) // Connect to MySQL
	if err != nil {
		log.Fatalf("database: %v", err) // Abort when the store is unreachable
	}
	defer db.Close()

	// Repositories for the four independent collections.
	users := repository.NewUserRepo(db)
	products := repository.NewProductRepo(db)
	carts := repository.NewCartRepo(db)
	orders := repository.NewOrderRepo(db)

	// Handlers grouped by concern.
	authH := handler.NewAuthHandler(cfg, users)
	catalogH := handler.NewCatalogHandler(products)
	sellerH := handler.NewSellerHandler(products)
	cartH := handler.NewCartHandler(carts)
	orderH := handler.NewOrderHandler(products, orders)

	e := echo.New() // Create Echo instance

	// Redis is optional: a nil client turns the cache and the rate limiter
	// into pass-through middleware.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)                 // health check
	router.RegisterAuth(e, authH)            // signup + login
	router.RegisterPublic(e, catalogH,       // public catalog, cached
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterSeller(e, sellerH, cfg.JWTSecret)
	router.RegisterCustomer(e, cartH, orderH, cfg.JWTSecret)

	// Background consumer appending order.placed events to logs/orders.log.
	go func() {
		if err := queue.StartOrderConsumer(); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
