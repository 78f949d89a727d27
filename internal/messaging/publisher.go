package messaging

import (
	"context"

	"github.com/feral-file/ticket-marketplace/internal/domain"
)

// Publisher defines the interface for publishing ticket lifecycle events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishTicketEvent publishes a confirmed ticket event
	PublishTicketEvent(ctx context.Context, event *domain.TicketEvent) error
	// Close closes the connection
	Close()
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishTicketEvent(context.Context, *domain.TicketEvent) error {
	return nil
}

func (nopPublisher) Close() {}
