package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	dsn, err := testDSN(ctx)
	if err != nil {
		fmt.Printf("Failed to prepare ticket store database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	if err := applySchema(testDB); err != nil {
		fmt.Printf("Failed to apply ticket schema: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()
	terminateContainer(ctx)
	os.Exit(code)
}

// testDSN prefers TICKET_MARKET_TEST_DSN and falls back to a throwaway container
func testDSN(ctx context.Context) (string, error) {
	if dsn := os.Getenv("TICKET_MARKET_TEST_DSN"); dsn != "" {
		fmt.Println("Using external ticket store database")
		return dsn, nil
	}

	var err error
	pgContainer, err = postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("ticket_market_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	return pgContainer.ConnectionString(ctx, "sslmode=disable")
}

func terminateContainer(ctx context.Context) {
	if pgContainer == nil {
		return
	}
	if err := pgContainer.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate postgres container: %v\n", err)
	}
}

func applySchema(db *gorm.DB) error {
	schemaSQL, err := os.ReadFile(filepath.Join("..", "..", "db", "init_pg_db.sql")) //nolint:gosec // G304: fixed schema path
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	return db.Exec(string(schemaSQL)).Error
}

// newTxStore hands each test a store bound to a transaction that is rolled back afterwards
func newTxStore(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

func TestPostgreSQLStore(t *testing.T) {
	if testDB == nil {
		t.Fatal("ticket store database not initialized")
	}

	RunStoreTests(t, newTxStore, func(*testing.T) {})
}
