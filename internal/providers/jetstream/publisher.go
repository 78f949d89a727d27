package jetstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ticket-marketplace/internal/adapter"
	"github.com/feral-file/ticket-marketplace/internal/domain"
	"github.com/feral-file/ticket-marketplace/internal/logger"
	"github.com/feral-file/ticket-marketplace/internal/messaging"
)

// DefaultSubjectPrefix is the subject prefix of ticket events
const DefaultSubjectPrefix = "tickets"

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc            adapter.NatsConn
	js            adapter.JetStream
	subjectPrefix string
	json          adapter.JSON
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	return &publisher{
		nc:            nc,
		js:            js,
		subjectPrefix: prefix,
		json:          jsonAdapter,
	}, nil
}

// PublishTicketEvent publishes a ticket event to NATS JetStream.
// The message ID is derived from the transaction so that redelivered publishes are deduplicated by the stream.
func (p *publisher) PublishTicketEvent(ctx context.Context, event *domain.TicketEvent) error {
	if event == nil {
		return errors.New("event is nil")
	}

	logger.DebugCtx(ctx, "Publishing ticket event", zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := p.buildSubject(event)
	msgID := fmt.Sprintf("%s:%s", event.TxHash, event.Type)

	_, err = p.js.Publish(ctx, subject, data, natsjs.WithMsgID(msgID))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject of the event
func (p *publisher) buildSubject(event *domain.TicketEvent) string {
	// Format: {prefix}.{event_type}, e.g. tickets.minted
	return fmt.Sprintf("%s.%s", p.subjectPrefix, event.Type)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
