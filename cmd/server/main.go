package main // Entry point package

import (
	"log"  // Logging library
	"time" // Session TTL arithmetic

	"github.com/joho/godotenv"    // .env loading for development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/wildlife-park-booking/internal/config"     // Internal config loader
	"github.com/iliyamo/wildlife-park-booking/internal/database"   // MySQL pool + schema
	"github.com/iliyamo/wildlife-park-booking/internal/handler"    // HTTP handlers
	"github.com/iliyamo/wildlife-park-booking/internal/middleware" // Response cache
	"github.com/iliyamo/wildlife-park-booking/internal/queue"      // Booking event consumer
	"github.com/iliyamo/wildlife-park-booking/internal/repository" // DB repositories
	"github.com/iliyamo/wildlife-park-booking/internal/router"     // Route registration
	queue_publisher "github.com/iliyamo/wildlife-park-booking/internal/service"
	"github.com/iliyamo/wildlife-park-booking/internal/session" // Session stores
	"github.com/iliyamo/wildlife-park-booking/internal/view"    // Template renderer
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it the cache is disabled and sessions fall
	// back to the signed-cookie store.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; using signed-cookie sessions, cache disabled")
	}
	sessions := session.NewStore(rdb, cfg.SessionSecret, time.Duration(cfg.SessionTTLMin)*time.Minute)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	accounts := repository.NewAccountRepo(db)
	bookings := repository.NewBookingRepo(db)

	e := echo.New()
	e.Renderer = renderer
	router.RegisterPages(e, cache)
	router.RegisterBooking(e,
		handler.NewSignupHandler(accounts, sessions),
		handler.NewLoginHandler(accounts, sessions),
		handler.NewTicketHandler(accounts, bookings, sessions, queue_publisher.PublishBookingCreated),
		handler.NewPaymentHandler(sessions),
		sessions)

	// Background consumer for booking events; reconnects on its own.
	go queue.StartBookingConsumer()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
