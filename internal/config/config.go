package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	RunAddress  string        // address and port the HTTP server listens on
	DatabaseURI string        // database connection URI
	JWTSecret   string        // signing key for JWT
	JWTTokenTTL time.Duration // JWT lifetime
	LogLevel    string        // logging level

	// External gateways; empty URL disables the client
	NotificationAddress string
	SMSGatewayAddress   string

	// Pricing and discounts
	BulkDiscountMonths  int     // minimum term for the bulk discount
	BulkDiscountPercent float64 // percent of the base price
	BundleDiscountFlat  float64 // flat amount for holding both services

	// Loans
	LoanMaxAmount           float64
	LoanLowBalanceThreshold float64
	LoanDailyRate           float64
	LoanDeadlineDays        int
	MinInterestGap          time.Duration // guard that makes interest re-runs no-ops

	// Fines and expiry warnings
	DailyFineReadingRoom float64
	DailyFineHostel      float64
	WarningLeadDays      int
	NotifyHour           int // local hour the notification sweep acts in

	// Validation
	MinPasswordLength int
}

// Load builds the configuration from .env, flags and environment variables.
// Precedence: env variables > flags > defaults. A .env file, when present,
// only seeds the environment and never overrides it.
func Load() (*Config, error) {
	// missing .env is fine
	_ = godotenv.Load()

	cfg := &Config{
		JWTTokenTTL:             24 * time.Hour,
		LogLevel:                "info",
		BulkDiscountMonths:      6,
		BulkDiscountPercent:     10,
		BundleDiscountFlat:      500,
		LoanMaxAmount:           1000,
		LoanLowBalanceThreshold: 50,
		LoanDailyRate:           0.01,
		LoanDeadlineDays:        30,
		MinInterestGap:          20 * time.Hour,
		DailyFineReadingRoom:    10,
		DailyFineHostel:         50,
		WarningLeadDays:         3,
		NotifyHour:              9,
		MinPasswordLength:       6,
	}

	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.NotificationAddress, "n", "", "push notification gateway address")
	flag.StringVar(&cfg.SMSGatewayAddress, "s", "", "sms gateway address")
	flag.Parse()

	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}
	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}
	if envNotifyAddr, ok := os.LookupEnv("NOTIFICATION_ADDRESS"); ok {
		cfg.NotificationAddress = envNotifyAddr
	}
	if envSMSAddr, ok := os.LookupEnv("SMS_GATEWAY_ADDRESS"); ok {
		cfg.SMSGatewayAddress = envSMSAddr
	}

	// JWT secret comes only from env, never from flags
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	loadIntEnv("BULK_DISCOUNT_MONTHS", &cfg.BulkDiscountMonths)
	loadFloatEnv("BULK_DISCOUNT_PERCENT", &cfg.BulkDiscountPercent)
	loadFloatEnv("BUNDLE_DISCOUNT_FLAT", &cfg.BundleDiscountFlat)

	loadFloatEnv("LOAN_MAX_AMOUNT", &cfg.LoanMaxAmount)
	loadFloatEnv("LOAN_LOW_BALANCE_THRESHOLD", &cfg.LoanLowBalanceThreshold)
	loadFloatEnv("LOAN_DAILY_RATE", &cfg.LoanDailyRate)
	loadIntEnv("LOAN_DEADLINE_DAYS", &cfg.LoanDeadlineDays)
	loadDurationEnv("MIN_INTEREST_GAP", &cfg.MinInterestGap)

	loadFloatEnv("DAILY_FINE_READING_ROOM", &cfg.DailyFineReadingRoom)
	loadFloatEnv("DAILY_FINE_HOSTEL", &cfg.DailyFineHostel)
	loadIntEnv("WARNING_LEAD_DAYS", &cfg.WarningLeadDays)
	loadIntEnv("NOTIFY_HOUR", &cfg.NotifyHour)

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}
	if cfg.NotifyHour < 0 || cfg.NotifyHour > 23 {
		return nil, fmt.Errorf("NOTIFY_HOUR must be between 0 and 23, got %d", cfg.NotifyHour)
	}

	return cfg, nil
}

func loadIntEnv(key string, dst *int) {
	if env, ok := os.LookupEnv(key); ok {
		if v, err := strconv.Atoi(env); err == nil && v >= 0 {
			*dst = v
		}
	}
}

func loadFloatEnv(key string, dst *float64) {
	if env, ok := os.LookupEnv(key); ok {
		if v, err := strconv.ParseFloat(env, 64); err == nil && v >= 0 {
			*dst = v
		}
	}
}

func loadDurationEnv(key string, dst *time.Duration) {
	if env, ok := os.LookupEnv(key); ok {
		if v, err := time.ParseDuration(env); err == nil && v > 0 {
			*dst = v
		}
	}
}
