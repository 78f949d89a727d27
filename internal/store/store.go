package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ticket-marketplace/internal/store/schema"
)

// Store defines the interface for the view-state journal
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateTransaction records a submitted transaction in pending status
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*schema.TicketTransaction, error)
	// UpdateTransactionStatus records the outcome of a submitted transaction
	UpdateTransactionStatus(ctx context.Context, input UpdateTransactionStatusInput) error
	// ListTransactions lists journal entries newest first, with the total count matching the filter
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]schema.TicketTransaction, uint64, error)
	// UpsertTicketSnapshots replaces the snapshots of the given tickets
	UpsertTicketSnapshots(ctx context.Context, inputs []UpsertTicketSnapshotInput) error
	// GetTicketSnapshot retrieves the snapshot of a ticket, nil when none exists
	GetTicketSnapshot(ctx context.Context, tokenID string) (*schema.TicketSnapshot, error)
}

// CreateTransactionInput is the input of CreateTransaction
type CreateTransactionInput struct {
	Kind     string
	Account  string
	TokenID  *string
	TxHash   string
	ValueWei string
	TokenURI *string
}

// UpdateTransactionStatusInput is the input of UpdateTransactionStatus
type UpdateTransactionStatusInput struct {
	TxHash       string
	Status       schema.TransactionStatus
	BlockNumber  *uint64
	TokenID      *string // set when the token ID is only known from the receipt
	ErrorMessage string
}

// TransactionFilter filters ListTransactions
type TransactionFilter struct {
	Account string
	Kind    string
	Limit   int
	Offset  uint64
}

// UpsertTicketSnapshotInput is the input of UpsertTicketSnapshots
type UpsertTicketSnapshotInput struct {
	TokenID                string
	Owner                  string
	OriginalPriceWei       string
	ApprovedResalePriceWei *string
	IsUsed                 bool
	TokenURI               string
	Metadata               datatypes.JSON
	MetadataHash           *string
	RefreshedAt            time.Time
}
