package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	HTTPAddr    string

	MySQLDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
	KafkaTopic   string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	JWTAccessSecret  string
	JWTRefreshSecret string
}

// Load reads configuration from the environment, after merging in a .env file
// when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Environment:      getenv("ENV", "development"),
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		MySQLDSN:         os.Getenv("MYSQL_DSN"),
		RedisAddr:        getenv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		KafkaTopic:       getenv("KAFKA_TOPIC", "buddyboard.notify"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPUsername:     os.Getenv("SMTP_USERNAME"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:         getenv("SMTP_FROM", "BuddyBoard <no-reply@buddyboard.local>"),
		JWTAccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTPPort = n
	} else {
		cfg.SMTPPort = 587
	}
	if v := getenv("KAFKA_BROKERS", "127.0.0.1:9092"); v != "" {
		cfg.KafkaBrokers = strings.Split(v, ",")
	}

	if cfg.MySQLDSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required but not set")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
