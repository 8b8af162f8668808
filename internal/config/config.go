package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Payment PaymentConfig
	Auth    AuthConfig
	Wizard  WizardConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StoreConfig struct {
	// DSN for the embedded sqlite bookings store.
	DSN string
}

type RedisConfig struct {
	// Addr empty means the search cache is disabled.
	Addr     string
	CacheTTL time.Duration
}

type KafkaConfig struct {
	Brokers  []string
	Enabled  bool
	MockMode bool
	Topics   TopicConfig
}

type TopicConfig struct {
	BookingConfirmed string
	StallBooked      string
}

type PaymentConfig struct {
	// Processor is "stub" or "stripe".
	Processor       string
	StripeSecretKey string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type WizardConfig struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration
	QRSecret      string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8086"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Store: StoreConfig{
			DSN: getEnv("STORE_DSN", "file:expo-ticketing.db?cache=shared"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			CacheTTL: time.Duration(getEnvInt("SEARCH_CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:  []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Enabled:  getEnvBool("KAFKA_ENABLED", false),
			MockMode: getEnvBool("KAFKA_MOCK_MODE", true),
			Topics: TopicConfig{
				BookingConfirmed: getEnv("KAFKA_TOPIC_BOOKING_CONFIRMED", "expo.booking.confirmed"),
				StallBooked:      getEnv("KAFKA_TOPIC_STALL_BOOKED", "expo.stall.booked"),
			},
		},
		Payment: PaymentConfig{
			Processor:       getEnv("PAYMENT_PROCESSOR", "stub"),
			StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "expo-dev-secret"),
			TokenTTL:  time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 720)) * time.Minute,
		},
		Wizard: WizardConfig{
			SessionTTL:    time.Duration(getEnvInt("WIZARD_SESSION_TTL_MINUTES", 30)) * time.Minute,
			SweepInterval: time.Duration(getEnvInt("WIZARD_SWEEP_INTERVAL_MINUTES", 5)) * time.Minute,
			QRSecret:      getEnv("QR_SECRET_KEY", "expo-pass-secret"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
