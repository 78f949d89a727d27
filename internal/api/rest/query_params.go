package rest

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ticket-marketplace/internal/store"
)

const MAX_PAGE_SIZE = store.MaxTransactionLimit

// ListTicketsQueryParams holds query parameters for GET /tickets
type ListTicketsQueryParams struct {
	Owner string `form:"owner"`
}

// ListTransactionsQueryParams holds query parameters for GET /transactions
type ListTransactionsQueryParams struct {
	Account string `form:"account"`
	Kind    string `form:"kind"`
	Limit   int    `form:"limit,default=20"`
	Offset  uint64 `form:"offset,default=0"`
}

// Validate validates the pagination parameters; account and kind are validated by the executor
func (p *ListTransactionsQueryParams) Validate() error {
	if p.Limit < 1 || p.Limit > MAX_PAGE_SIZE {
		return fmt.Errorf("limit must be between 1 and %d", MAX_PAGE_SIZE)
	}
	return nil
}

// ParseListTransactionsQuery parses query parameters for GET /transactions
func ParseListTransactionsQuery(c *gin.Context) (*ListTransactionsQueryParams, error) {
	var params ListTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Account = strings.TrimSpace(params.Account)
	params.Kind = strings.ToLower(strings.TrimSpace(params.Kind))

	return &params, nil
}

// MintTicketForm is the multipart form of POST /tickets
type MintTicketForm struct {
	EventName string                `form:"event_name"`
	Seat      string                `form:"seat"`
	Date      string                `form:"date"`
	Location  string                `form:"location"`
	Price     string                `form:"price"`
	Organizer string                `form:"organizer"`
	Image     *multipart.FileHeader `form:"image"`
}

// MintWithTokenURIRequest is the body of POST /tickets/mint
type MintWithTokenURIRequest struct {
	TokenURI string `json:"token_uri" binding:"required"`
}

// ResellTicketRequest is the body of POST /tickets/:token_id/resell
type ResellTicketRequest struct {
	Price string `json:"price" binding:"required"`
}
