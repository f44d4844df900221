package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port          string
	DatabaseURL   string
	GinMode       string
	LogLevel      string
	EndpointsFile string
	MaxOpenConns  int
	MaxIdleConns  int
	SlowQuery     time.Duration
}

const defaultDSN = "host=localhost user=postgres password=postgres dbname=nc_news port=5432 sslmode=disable"

// Load reads an optional .env file, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, reading env vars from system")
	}

	return &Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   getenv("DATABASE_URL", defaultDSN),
		GinMode:       getenv("GIN_MODE", "release"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		EndpointsFile: getenv("ENDPOINTS_FILE", "./endpoints.json"),
		MaxOpenConns:  getenvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:  getenvInt("DB_MAX_IDLE_CONNS", 5),
		SlowQuery:     time.Duration(getenvInt("SLOW_QUERY_MS", 200)) * time.Millisecond,
	}
}

// NewLogger builds the process logger. Unknown levels fall back to info.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		logrus.Warnf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
