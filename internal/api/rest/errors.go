package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ticket-marketplace/internal/api/shared/errors"
	"github.com/feral-file/ticket-marketplace/internal/domain"
	"github.com/feral-file/ticket-marketplace/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondInternalError logs the error and responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string) {
	logger.ErrorCtx(c.Request.Context(), err,
		zap.String("request_id", c.GetString("request_id")),
		zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondExecutorError maps a marketplace error onto its HTTP response
func respondExecutorError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidTokenID),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidImage):
		respondBadRequest(c, message, err.Error())

	case errors.Is(err, domain.ErrTicketNotFound):
		respondNotFound(c, "Ticket not found", err.Error())

	case errors.Is(err, domain.ErrExecutionReverted),
		errors.Is(err, domain.ErrTransactionFailed):
		c.JSON(http.StatusUnprocessableEntity, apierrors.NewTransactionRejectedError(message, err.Error()))

	case errors.Is(err, domain.ErrWrongNetwork),
		errors.Is(err, domain.ErrContractNotDeployed),
		errors.Is(err, domain.ErrNoAccount):
		logger.WarnCtx(c.Request.Context(), message, zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, apierrors.NewServiceError(message, err.Error()))

	case errors.Is(err, context.DeadlineExceeded):
		logger.WarnCtx(c.Request.Context(), message, zap.Error(err))
		c.JSON(http.StatusGatewayTimeout, apierrors.NewServiceError(message, "timed out waiting for the network"))

	default:
		respondInternalError(c, err, message)
	}
}
