package schema

import "time"

// TransactionStatus is the lifecycle status of a submitted ticket transaction
type TransactionStatus string

const (
	// TransactionStatusPending is a submitted transaction that has not been mined yet
	TransactionStatusPending TransactionStatus = "pending"
	// TransactionStatusConfirmed is a transaction mined with a successful receipt
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	// TransactionStatusFailed is a transaction that reverted or could not be confirmed
	TransactionStatusFailed TransactionStatus = "failed"
)

// TicketTransaction represents the ticket_transactions table - journal of writes submitted by the service
type TicketTransaction struct {
	// ID is a ULID assigned when the transaction is submitted
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// Kind is the contract entry point called: mint, use or resell
	Kind string `gorm:"column:kind;not null;type:varchar(16);index:idx_ticket_transactions_kind"`
	// Account is the signing account
	Account string `gorm:"column:account;not null;type:varchar(42);index:idx_ticket_transactions_account"`
	// TokenID is the ticket token ID, known after the mint receipt for mints
	TokenID *string `gorm:"column:token_id;type:numeric(78,0)"`
	// TxHash is the transaction hash
	TxHash string `gorm:"column:tx_hash;not null;uniqueIndex;type:varchar(66)"`
	// ValueWei is the amount paid (mint) or asked (resell) in wei
	ValueWei string `gorm:"column:value_wei;not null;default:0;type:numeric(78,0)"`
	// TokenURI is the metadata URI passed to mintTicket
	TokenURI *string `gorm:"column:token_uri;type:text"`
	// Status is pending until the receipt is known
	Status TransactionStatus `gorm:"column:status;not null;default:pending;type:varchar(16)"`
	// BlockNumber is the block the transaction was mined in
	BlockNumber *uint64 `gorm:"column:block_number"`
	// ErrorMessage holds the failure reason of failed transactions
	ErrorMessage *string `gorm:"column:error_message;type:text"`
	// CreatedAt is the timestamp when the transaction was submitted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TicketTransaction model
func (TicketTransaction) TableName() string {
	return "ticket_transactions"
}
