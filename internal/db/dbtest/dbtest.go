//go:build integration

// Package dbtest starts a throwaway postgres for integration tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"ncnews/internal/config"
	"ncnews/internal/db"

	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Start runs a postgres container for the lifetime of t and returns a
// connection to it. Call Reseed before each test that mutates data.
func Start(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("nc_news_test"),
		postgres.WithUsername("ncnews"),
		postgres.WithPassword("ncnews"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	conn, err := db.Open(&config.Config{
		DatabaseURL:  dsn,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
		SlowQuery:    time.Second,
	}, log)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(conn) })

	Reseed(t, conn)
	return conn
}

// Reseed restores the development dataset.
func Reseed(t *testing.T, conn *gorm.DB) {
	t.Helper()
	if err := db.Seed(conn, db.DevData()); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}
}
