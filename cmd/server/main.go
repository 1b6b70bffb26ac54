package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/unistay/student-housing/internal/booking"
	"github.com/unistay/student-housing/internal/catalog"
	"github.com/unistay/student-housing/internal/config"
	"github.com/unistay/student-housing/internal/database"
	"github.com/unistay/student-housing/internal/handler"
	"github.com/unistay/student-housing/internal/queue"
	"github.com/unistay/student-housing/internal/router"
	"github.com/unistay/student-housing/internal/storage"

	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// Redis serves double duty: the default storage backend plus the
	// response cache and rate limiter.  A nil client disables the latter
	// two gracefully.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	kv, err := openStorage(cfg, rdb)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	catalogStore := catalog.NewStore(ctx, kv)
	bookingStore := booking.NewStore(ctx, kv)
	cancel()

	if cfg.ConsumerOn {
		// The consumer keeps its own reconnect loop and never returns in
		// normal operation.
		go func() {
			if err := queue.StartBookingConsumer(); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterCatalog(e, handler.NewCatalogHandler(catalogStore), rdb)
	router.RegisterBookings(e, handler.NewBookingHandler(bookingStore), rdb, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, storage=%s)", addr, cfg.Env, cfg.StorageDriver)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// openStorage selects the durable key-value backend from configuration.
// The memory driver exists for development only; its state dies with the
// process.
func openStorage(cfg config.Config, rdb *redis.Client) (storage.KV, error) {
	switch cfg.StorageDriver {
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return storage.NewMySQLKV(ctx, db)
	case "memory":
		log.Printf("using in-memory storage; state will not survive a restart")
		return storage.NewMemoryKV(), nil
	default: // redis
		if rdb == nil {
			log.Fatalf("storage driver is redis but redis is unreachable")
		}
		return storage.NewRedisKV(rdb, cfg.KVPrefix), nil
	}
}
