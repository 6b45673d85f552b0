package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// TestDB represents a test database connection
type TestDB struct {
	DB        *sqlx.DB
	Logger    *zap.Logger
	container testcontainers.Container
}

// SetupTestDB connects to TEST_DB_* when TEST_DB_HOST is set, otherwise starts
// a disposable postgres container. Skips the test when neither is available.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	var (
		connStr   string
		container testcontainers.Container
	)

	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		connStr = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host,
			getEnv("TEST_DB_PORT", "5432"),
			getEnv("TEST_DB_USER", "postgres"),
			getEnv("TEST_DB_PASSWORD", "postgres"),
			getEnv("TEST_DB_NAME", "trip_test"),
			getEnv("TEST_DB_SSLMODE", "disable"),
		)
	} else {
		container, connStr = startContainer(t)
	}

	// Retry connection with exponential backoff to wait for DB recovery
	var db *sqlx.DB
	var err error
	maxRetries := 10
	retryDelay := 500 * time.Millisecond

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, maxRetries, retryDelay)
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}

	if err != nil {
		t.Fatalf("Failed to connect to test database after %d attempts: %v", maxRetries, err)
	}

	return &TestDB{
		DB:        db,
		Logger:    zap.NewNop(),
		container: container,
	}
}

func startContainer(t *testing.T) (testcontainers.Container, string) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "trip_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	return container, fmt.Sprintf(
		"host=%s port=%s user=test password=test dbname=trip_test sslmode=disable",
		host, port.Port(),
	)
}

// Close closes the database connection and stops the container if one was started
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
	if tdb.container != nil {
		_ = tdb.container.Terminate(context.Background())
	}
}

// Cleanup truncates every table the repositories write to
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	for _, table := range []string{"fare_records", "cors_origins"} {
		if _, err := tdb.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
