package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ticket-marketplace/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	requireAuth := middleware.Auth(auth)

	v1 := router.Group("/api/v1")
	{
		// Wallet session (public read access)
		v1.GET("/wallet", handler.ConnectWallet)

		// Ticket reads (public read access)
		v1.GET("/tickets", handler.ListTickets)
		v1.GET("/tickets/:token_id", handler.GetTicket)

		// Ticket writes spend the wallet's funds (requires authentication)
		v1.POST("/tickets", requireAuth, handler.MintTicket)
		v1.POST("/tickets/mint", requireAuth, handler.MintWithTokenURI)
		v1.POST("/tickets/:token_id/use", requireAuth, handler.UseTicket)
		v1.POST("/tickets/:token_id/resell", requireAuth, handler.ResellTicket)

		// Transaction journal (public read access)
		v1.GET("/transactions", handler.ListTransactions)
	}
}
