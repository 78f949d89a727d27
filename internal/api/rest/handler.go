package rest

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ticket-marketplace/internal/domain"
	"github.com/feral-file/ticket-marketplace/internal/marketplace"
	"github.com/feral-file/ticket-marketplace/internal/store"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ConnectWallet verifies the network and the contract and returns the wallet session
	// GET /api/v1/wallet
	ConnectWallet(c *gin.Context)

	// ListTickets lists the tickets minted by an account
	// GET /api/v1/tickets?owner=<address>
	ListTickets(c *gin.Context)

	// GetTicket retrieves a single ticket by its token ID
	// GET /api/v1/tickets/:token_id
	GetTicket(c *gin.Context)

	// MintTicket uploads the ticket image and metadata, then mints the ticket (requires authentication)
	// POST /api/v1/tickets (multipart form)
	MintTicket(c *gin.Context)

	// MintWithTokenURI mints a ticket for existing metadata (requires authentication)
	// POST /api/v1/tickets/mint
	MintWithTokenURI(c *gin.Context)

	// UseTicket marks a ticket as used (requires authentication)
	// POST /api/v1/tickets/:token_id/use
	UseTicket(c *gin.Context)

	// ResellTicket lists a ticket for resale (requires authentication)
	// POST /api/v1/tickets/:token_id/resell
	ResellTicket(c *gin.Context)

	// ListTransactions lists the journal of submitted transactions
	// GET /api/v1/transactions?account=<address>&kind=<kind>&limit=<limit>&offset=<offset>
	ListTransactions(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor       marketplace.Executor
	maxUploadBytes int64
}

// NewHandler creates a new REST API handler
func NewHandler(exec marketplace.Executor, maxUploadBytes int64) Handler {
	return &handler{
		executor:       exec,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *handler) ConnectWallet(c *gin.Context) {
	session, err := h.executor.ConnectWallet(c.Request.Context())
	if err != nil {
		respondExecutorError(c, err, "Failed to connect wallet")
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *handler) ListTickets(c *gin.Context) {
	var params ListTicketsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	tickets, err := h.executor.ListOwnedTickets(c.Request.Context(), params.Owner)
	if err != nil {
		respondExecutorError(c, err, "Failed to list tickets")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

func (h *handler) GetTicket(c *gin.Context) {
	ticket, err := h.executor.GetTicket(c.Request.Context(), c.Param("token_id"))
	if err != nil {
		respondExecutorError(c, err, "Failed to get ticket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *handler) MintTicket(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		// the form carries a few short fields on top of the image
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+64*1024)
	}

	var form MintTicketForm
	if err := c.ShouldBind(&form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondImageTooLarge(c, h.maxUploadBytes)
			return
		}
		respondValidationError(c, fmt.Sprintf("Invalid form: %v", err))
		return
	}

	req := domain.MintRequest{
		EventName: form.EventName,
		Seat:      form.Seat,
		Date:      form.Date,
		Location:  form.Location,
		Price:     form.Price,
		Organizer: form.Organizer,
	}

	if form.Image != nil {
		if h.maxUploadBytes > 0 && form.Image.Size > h.maxUploadBytes {
			respondImageTooLarge(c, h.maxUploadBytes)
			return
		}

		image, err := readFormFile(form.Image)
		if err != nil {
			respondBadRequest(c, "Failed to read image", err.Error())
			return
		}
		req.Image = image
		req.ImageName = form.Image.Filename
	}

	result, err := h.executor.MintTicket(c.Request.Context(), req)
	if err != nil {
		respondExecutorError(c, err, "Failed to mint ticket")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) MintWithTokenURI(c *gin.Context) {
	var req MintWithTokenURIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	result, err := h.executor.MintWithTokenURI(c.Request.Context(), req.TokenURI)
	if err != nil {
		respondExecutorError(c, err, "Failed to mint ticket")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) UseTicket(c *gin.Context) {
	result, err := h.executor.UseTicket(c.Request.Context(), c.Param("token_id"))
	if err != nil {
		respondExecutorError(c, err, "Failed to use ticket")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) ResellTicket(c *gin.Context) {
	var req ResellTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	result, err := h.executor.ResellTicket(c.Request.Context(), c.Param("token_id"), req.Price)
	if err != nil {
		respondExecutorError(c, err, "Failed to list ticket for resale")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) ListTransactions(c *gin.Context) {
	params, err := ParseListTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := params.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	list, err := h.executor.ListTransactions(c.Request.Context(), store.TransactionFilter{
		Account: params.Account,
		Kind:    params.Kind,
		Limit:   params.Limit,
		Offset:  params.Offset,
	})
	if err != nil {
		respondExecutorError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ticket-marketplace-api",
	})
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func respondImageTooLarge(c *gin.Context, maxUploadBytes int64) {
	respondBadRequest(c, "Image too large", fmt.Sprintf("image must not exceed %d bytes", maxUploadBytes))
}
