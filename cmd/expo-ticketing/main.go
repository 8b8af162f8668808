package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"expo-ticketing/internal/auth"
	"expo-ticketing/internal/booking"
	booking_api "expo-ticketing/internal/booking/api"
	booking_db "expo-ticketing/internal/booking/db"
	"expo-ticketing/internal/cache"
	"expo-ticketing/internal/catalog"
	catalog_api "expo-ticketing/internal/catalog/api"
	"expo-ticketing/internal/config"
	"expo-ticketing/internal/kafka"
	"expo-ticketing/internal/logger"
	"expo-ticketing/internal/pass"
)

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) *booking_db.DB {
	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.Store.DSN)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to open sqlite store: %v", err))
	}
	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	store := &booking_db.DB{Bun: bunDB}
	if err := store.Init(ctx); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to create bookings table: %v", err))
	}
	log.Info("DATABASE", fmt.Sprintf("Bookings store ready at %s", cfg.Store.DSN))
	return store
}

func openRedis(ctx context.Context, cfg *config.Config, log *logger.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Info("REDIS", "REDIS_ADDR not set, search cache disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("REDIS", fmt.Sprintf("Redis unreachable (%v), search cache disabled", err))
		client.Close()
		return nil
	}
	log.Info("REDIS", fmt.Sprintf("Search cache connected to %s", cfg.Redis.Addr))
	return client
}

func buildProcessor(cfg *config.Config, log *logger.Logger) booking.PaymentProcessor {
	if cfg.Payment.Processor == "stripe" {
		if cfg.Payment.StripeSecretKey == "" {
			log.Fatal("CONFIG", "PAYMENT_PROCESSOR=stripe requires STRIPE_SECRET_KEY")
		}
		log.Info("PAYMENT", "Using Stripe payment processor")
		return booking.NewStripeProcessor(cfg.Payment.StripeSecretKey)
	}
	log.Info("PAYMENT", "Using stub payment processor (every authorization succeeds)")
	return booking.StubProcessor{}
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting expo-ticketing service")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	}
	cfg := config.Load()

	ctx := context.Background()

	store := openStore(ctx, cfg, log)
	defer store.Bun.Close()

	redisClient := openRedis(ctx, cfg, log)
	if redisClient != nil {
		defer redisClient.Close()
	}
	searchCache := cache.NewSearchCache(redisClient, cfg.Redis.CacheTTL)

	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.MockMode, log)
		defer producer.Close()
		if !cfg.Kafka.MockMode {
			topics := []string{cfg.Kafka.Topics.BookingConfirmed, cfg.Kafka.Topics.StallBooked}
			if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, topics); err != nil {
				log.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
			}
		}
		log.Info("KAFKA", "Booking event producer initialized")
	} else {
		log.Info("KAFKA", "Kafka disabled, booking events will not be published")
	}

	exhibitions, cities, categories, stallTypes, addons := catalog.Seed()
	catalogStore := catalog.NewStore(exhibitions, cities, categories, stallTypes, addons)
	log.Info("CATALOG", fmt.Sprintf("Seeded %d exhibitions across %d cities", len(exhibitions), len(cities)))

	var publisher booking.Publisher
	if producer != nil {
		publisher = producer
	}
	bookingService := booking.NewService(
		catalogStore,
		store,
		publisher,
		buildProcessor(cfg, log),
		pass.NewGenerator(cfg.Wizard.QRSecret),
		log,
		booking.Topics{
			BookingConfirmed: cfg.Kafka.Topics.BookingConfirmed,
			StallBooked:      cfg.Kafka.Topics.StallBooked,
		},
		cfg.Wizard.SessionTTL,
	)

	done := make(chan struct{})
	bookingService.StartSweeper(done, cfg.Wizard.SweepInterval)

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authHandler := &auth.Handler{Issuer: issuer, Logger: log}
	catalogHandler := catalog_api.NewHandler(catalogStore, searchCache, log)
	bookingHandler := booking_api.NewHandler(bookingService, log)

	log.Info("HTTP", "Setting up router")
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		catalogHandler.RegisterRoutes(r)
		bookingHandler.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(issuer))
			r.Get("/bookings", bookingHandler.ListMyBookings)
		})
	})
	log.Info("ROUTER", "Routes registered under /api")

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("expo-ticketing listening on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, draining")
	close(done)

	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "Shutdown complete")
	}
}
