package schema

import (
	"time"

	"gorm.io/datatypes"
)

// TicketSnapshot represents the ticket_snapshots table - the last view of a ticket read from the chain.
// Rows are mirrors only and never served in place of a contract read.
type TicketSnapshot struct {
	// TokenID is the ticket token ID
	TokenID string `gorm:"column:token_id;primaryKey;type:numeric(78,0)"`
	// Owner is the owner reported by ownerOf
	Owner string `gorm:"column:owner;not null;type:varchar(42);index:idx_ticket_snapshots_owner"`
	// OriginalPriceWei is the price paid at mint
	OriginalPriceWei string `gorm:"column:original_price_wei;not null;type:numeric(78,0)"`
	// ApprovedResalePriceWei is the approved resale price, NULL when not listed
	ApprovedResalePriceWei *string `gorm:"column:approved_resale_price_wei;type:numeric(78,0)"`
	// IsUsed mirrors isUsed
	IsUsed bool `gorm:"column:is_used;not null;default:false"`
	// TokenURI is the metadata URI of the ticket
	TokenURI string `gorm:"column:token_uri;not null;type:text"`
	// Metadata is the retrieved metadata document, NULL when retrieval failed
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// MetadataHash is the canonical hash of Metadata
	MetadataHash *string `gorm:"column:metadata_hash;type:varchar(64)"`
	// RefreshedAt is the timestamp of the contract reads the snapshot was built from
	RefreshedAt time.Time `gorm:"column:refreshed_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TicketSnapshot model
func (TicketSnapshot) TableName() string {
	return "ticket_snapshots"
}
