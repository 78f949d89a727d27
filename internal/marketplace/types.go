package marketplace

import (
	"math/big"
	"time"

	"github.com/feral-file/ticket-marketplace/internal/domain"
	"github.com/feral-file/ticket-marketplace/internal/store/schema"
)

// TransactionRecord is the view of a journaled ticket transaction
type TransactionRecord struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Account      string    `json:"account"`
	TokenID      *string   `json:"token_id"`
	TxHash       string    `json:"tx_hash"`
	Value        string    `json:"value"` // ether
	TokenURI     *string   `json:"token_uri,omitempty"`
	Status       string    `json:"status"`
	BlockNumber  *uint64   `json:"block_number"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TransactionList is a page of journaled transactions
type TransactionList struct {
	Transactions []TransactionRecord `json:"transactions"`
	Total        uint64              `json:"total"`
	NextOffset   *uint64             `json:"next_offset,omitempty"`
}

// mapTransaction maps a journal row to its view
func mapTransaction(txn schema.TicketTransaction) TransactionRecord {
	return TransactionRecord{
		ID:           txn.ID,
		Kind:         txn.Kind,
		Account:      txn.Account,
		TokenID:      txn.TokenID,
		TxHash:       txn.TxHash,
		Value:        weiStringToEther(txn.ValueWei),
		TokenURI:     txn.TokenURI,
		Status:       string(txn.Status),
		BlockNumber:  txn.BlockNumber,
		ErrorMessage: txn.ErrorMessage,
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
}

func weiStringToEther(wei string) string {
	v, ok := new(big.Int).SetString(wei, 10)
	if !ok {
		return domain.FormatEther(nil)
	}
	return domain.FormatEther(v)
}
