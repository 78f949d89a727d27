package store

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ticket-marketplace/internal/logger"
	"github.com/feral-file/ticket-marketplace/internal/store/schema"
)

const (
	// DefaultTransactionLimit is the page size used when the filter does not set one
	DefaultTransactionLimit = 20
	// MaxTransactionLimit caps the page size of ListTransactions
	MaxTransactionLimit = 100

	// fields written per snapshot row, used to size upsert batches
	snapshotFields = 11
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk upserts that stays under
// PostgreSQL's limit of 65535 parameters per statement
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// CreateTransaction records a submitted transaction in pending status
func (s *pgStore) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*schema.TicketTransaction, error) {
	now := time.Now()
	valueWei := input.ValueWei
	if valueWei == "" {
		valueWei = "0"
	}

	txn := &schema.TicketTransaction{
		ID:        ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		Kind:      input.Kind,
		Account:   strings.ToLower(input.Account),
		TokenID:   input.TokenID,
		TxHash:    strings.ToLower(input.TxHash),
		ValueWei:  valueWei,
		TokenURI:  input.TokenURI,
		Status:    schema.TransactionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, fmt.Errorf("failed to create ticket transaction: %w", err)
	}

	return txn, nil
}

// UpdateTransactionStatus records the outcome of a submitted transaction
func (s *pgStore) UpdateTransactionStatus(ctx context.Context, input UpdateTransactionStatusInput) error {
	updates := map[string]interface{}{
		"status":     input.Status,
		"updated_at": time.Now(),
	}
	if input.BlockNumber != nil {
		updates["block_number"] = *input.BlockNumber
	}
	if input.TokenID != nil {
		updates["token_id"] = *input.TokenID
	}
	if input.ErrorMessage != "" {
		errorMessage := input.ErrorMessage
		if len(errorMessage) > 1024 {
			errorMessage = errorMessage[:1024]
		}
		updates["error_message"] = errorMessage
	}

	result := s.db.WithContext(ctx).
		Model(&schema.TicketTransaction{}).
		Where("tx_hash = ?", strings.ToLower(input.TxHash)).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket transaction status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket transaction %s not found", input.TxHash)
	}

	return nil
}

// ListTransactions lists journal entries newest first
func (s *pgStore) ListTransactions(ctx context.Context, filter TransactionFilter) ([]schema.TicketTransaction, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.TicketTransaction{})

	if filter.Account != "" {
		query = query.Where("account = ?", strings.ToLower(filter.Account))
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ticket transactions: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	if limit > MaxTransactionLimit {
		limit = MaxTransactionLimit
	}

	var txns []schema.TicketTransaction
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(int(min(filter.Offset, math.MaxInt32))). //nolint:gosec // G115: clamped to MaxInt32
		Find(&txns).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ticket transactions: %w", err)
	}

	return txns, uint64(total), nil //nolint:gosec // G115: COUNT is never negative
}

// UpsertTicketSnapshots replaces the snapshots of the given tickets
func (s *pgStore) UpsertTicketSnapshots(ctx context.Context, inputs []UpsertTicketSnapshotInput) error {
	if len(inputs) == 0 {
		return nil
	}

	now := time.Now()
	snapshots := make([]schema.TicketSnapshot, 0, len(inputs))
	for _, input := range inputs {
		snapshots = append(snapshots, schema.TicketSnapshot{
			TokenID:                input.TokenID,
			Owner:                  strings.ToLower(input.Owner),
			OriginalPriceWei:       input.OriginalPriceWei,
			ApprovedResalePriceWei: input.ApprovedResalePriceWei,
			IsUsed:                 input.IsUsed,
			TokenURI:               input.TokenURI,
			Metadata:               input.Metadata,
			MetadataHash:           input.MetadataHash,
			RefreshedAt:            input.RefreshedAt,
			CreatedAt:              now,
			UpdatedAt:              now,
		})
	}

	batchSize := calculateSafeBatchSize(len(snapshots), snapshotFields)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "token_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"owner",
				"original_price_wei",
				"approved_resale_price_wei",
				"is_used",
				"token_uri",
				"metadata",
				"metadata_hash",
				"refreshed_at",
				"updated_at",
			}),
		}).
		CreateInBatches(&snapshots, batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert ticket snapshots: %w", err)
	}

	logger.DebugCtx(ctx, "Upserted ticket snapshots", zap.Int("count", len(snapshots)))

	return nil
}

// GetTicketSnapshot retrieves the snapshot of a ticket
func (s *pgStore) GetTicketSnapshot(ctx context.Context, tokenID string) (*schema.TicketSnapshot, error) {
	var snapshot schema.TicketSnapshot
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket snapshot: %w", err)
	}

	return &snapshot, nil
}
