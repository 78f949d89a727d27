package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Attribute trait names written into ticket metadata, in display order
const (
	TraitEvent     = "Event"
	TraitSeat      = "Seat"
	TraitDate      = "Date"
	TraitLocation  = "Location"
	TraitPrice     = "Price"
	TraitOrganizer = "Organizer"
)

// TicketDateLayout is the accepted layout for the event date
const TicketDateLayout = "2006-01-02"

// Attribute is a single trait of the ticket metadata document
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// TicketMetadata is the off-chain metadata document of a ticket.
// It follows the common NFT metadata layout so that wallets and marketplaces can render it.
type TicketMetadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
	ExternalURL string      `json:"external_url,omitempty"`
}

// Attribute returns the value of the named trait, or an empty string
func (m *TicketMetadata) Attribute(traitType string) string {
	if m == nil {
		return ""
	}
	for _, a := range m.Attributes {
		if a.TraitType == traitType {
			return a.Value
		}
	}
	return ""
}

// MintRequest carries the mint form fields
type MintRequest struct {
	EventName string
	Seat      string
	Date      string
	Location  string
	Price     string // ether amount, e.g. "0.1"
	Organizer string
	Image     []byte
	ImageName string
}

// Validate checks that every form field is present and well formed
func (r *MintRequest) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"event_name", r.EventName},
		{"seat", r.Seat},
		{"date", r.Date},
		{"location", r.Location},
		{"price", r.Price},
		{"organizer", r.Organizer},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}

	if len(r.Image) == 0 {
		return fmt.Errorf("%w: please select a ticket image", ErrInvalidImage)
	}

	if _, err := time.Parse(TicketDateLayout, r.Date); err != nil {
		return fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", ErrInvalidRequest)
	}

	if _, err := ParsePositiveEther(r.Price); err != nil {
		return err
	}

	return nil
}

// BuildTicketMetadata builds the metadata document for a mint request.
// imageURI is the content-addressed location of the already uploaded image.
func BuildTicketMetadata(r MintRequest, imageURI string) TicketMetadata {
	return TicketMetadata{
		Name:        fmt.Sprintf("%s Ticket", r.EventName),
		Description: fmt.Sprintf("Ticket for %s at %s", r.EventName, r.Location),
		Image:       imageURI,
		Attributes: []Attribute{
			{TraitType: TraitEvent, Value: r.EventName},
			{TraitType: TraitSeat, Value: r.Seat},
			{TraitType: TraitDate, Value: r.Date},
			{TraitType: TraitLocation, Value: r.Location},
			{TraitType: TraitPrice, Value: fmt.Sprintf("%s ETH", r.Price)},
			{TraitType: TraitOrganizer, Value: r.Organizer},
		},
	}
}

// TicketStatus is the display status of a ticket
type TicketStatus string

const (
	TicketStatusAvailable TicketStatus = "Available"
	TicketStatusUsed      TicketStatus = "Used"
)

// Ticket is the view of a ticket assembled from contract reads and its metadata document.
// It mirrors contract state and holds no invariants of its own.
type Ticket struct {
	TokenID             string          `json:"token_id"`
	Owner               string          `json:"owner"`
	Price               string          `json:"price"` // original price in ether
	IsUsed              bool            `json:"is_used"`
	ApprovedResalePrice *string         `json:"approved_resale_price"` // nil when not listed
	TokenURI            string          `json:"token_uri"`
	Metadata            *TicketMetadata `json:"metadata"` // nil when the document could not be retrieved
}

// Status returns the display status of the ticket
func (t *Ticket) Status() TicketStatus {
	if t.IsUsed {
		return TicketStatusUsed
	}
	return TicketStatusAvailable
}

// Listed reports whether the contract holds an approved resale price for the ticket
func (t *Ticket) Listed() bool {
	return t.ApprovedResalePrice != nil
}

// CanUse reports whether the ticket can still be used
func (t *Ticket) CanUse() bool {
	return !t.IsUsed && !t.Listed()
}

// CanResell reports whether the ticket can be listed for resale
func (t *Ticket) CanResell() bool {
	return !t.IsUsed && !t.Listed()
}

// ParseTokenID parses a decimal token ID
func ParseTokenID(tokenID string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(strings.TrimSpace(tokenID), 10)
	if !ok || id.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTokenID, tokenID)
	}
	return id, nil
}

// TransactionKind identifies which contract entry point a transaction called
type TransactionKind string

const (
	TransactionKindMint   TransactionKind = "mint"
	TransactionKindUse    TransactionKind = "use"
	TransactionKindResell TransactionKind = "resell"
)

// TransactionResult is returned once a write has been mined
type TransactionResult struct {
	Kind        TransactionKind `json:"kind"`
	TxHash      string          `json:"tx_hash"`
	TokenID     string          `json:"token_id,omitempty"`
	BlockNumber uint64          `json:"block_number"`
	Value       string          `json:"value,omitempty"` // ether amount paid or asked
	TokenURI    string          `json:"token_uri,omitempty"`
}

// Session describes a verified wallet connection
type Session struct {
	Account         string `json:"account"`
	ChainID         int64  `json:"chain_id"`
	ChainIDHex      string `json:"chain_id_hex"`
	ContractAddress string `json:"contract_address"`
	Balance         string `json:"balance"` // ether
}

// TicketEventType is the type of a ticket lifecycle notification
type TicketEventType string

const (
	TicketEventMinted TicketEventType = "minted"
	TicketEventUsed   TicketEventType = "used"
	TicketEventListed TicketEventType = "listed"
)

// TicketEvent is published after a ticket write is confirmed on chain
type TicketEvent struct {
	Type        TicketEventType `json:"type"`
	TokenID     string          `json:"token_id"`
	Account     string          `json:"account"`
	TxHash      string          `json:"tx_hash"`
	BlockNumber uint64          `json:"block_number"`
	Price       string          `json:"price,omitempty"`
	TokenURI    string          `json:"token_uri,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
