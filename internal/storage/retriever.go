package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/feral-file/ticket-marketplace/internal/adapter"
	"github.com/feral-file/ticket-marketplace/internal/domain"
	"github.com/feral-file/ticket-marketplace/internal/logger"
)

// Retriever fetches ticket metadata documents from content-addressed storage
//
//go:generate mockgen -source=retriever.go -destination=../mocks/storage_retriever.go -package=mocks -mock_names=Retriever=MockRetriever
type Retriever interface {
	// RetrieveTicketMetadata fetches the document behind an ipfs:// URI, a gateway URL or a plain http(s) URL.
	// Content-addressed documents are requested from every configured gateway at once and the first
	// decoded document wins.
	RetrieveTicketMetadata(ctx context.Context, uri string) (*domain.TicketMetadata, error)
}

type retriever struct {
	httpClient adapter.HTTPClient
	config     *Config
}

// NewRetriever creates a new metadata retriever
func NewRetriever(httpClient adapter.HTTPClient, config *Config) Retriever {
	return &retriever{
		httpClient: httpClient,
		config:     config,
	}
}

func (r *retriever) RetrieveTicketMetadata(ctx context.Context, uri string) (*domain.TicketMetadata, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("%w: empty token URI", domain.ErrMetadataNotFound)
	}

	if cid, ok := ParseCID(uri); ok {
		return r.retrieveIPFS(ctx, cid)
	}

	if !strings.HasPrefix(uri, "http://") && !strings.HasPrefix(uri, "https://") {
		return nil, fmt.Errorf("%w: unsupported token URI %s", domain.ErrMetadataNotFound, uri)
	}

	var metadata domain.TicketMetadata
	if err := r.httpClient.Get(ctx, uri, &metadata); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrMetadataNotFound, uri, err)
	}

	return &metadata, nil
}

// retrieveIPFS requests the CID from all gateways in parallel
func (r *retriever) retrieveIPFS(ctx context.Context, cid string) (*domain.TicketMetadata, error) {
	if len(r.config.IPFSGateways) == 0 {
		return nil, errors.New("no IPFS gateways configured")
	}

	logger.DebugCtx(ctx, "Retrieving ticket metadata", zap.String("cid", cid), zap.Int("gateways", len(r.config.IPFSGateways)))

	// Losing requests are cancelled once a gateway answers
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		url      string
		metadata *domain.TicketMetadata
		err      error
	}

	resultCh := make(chan result, len(r.config.IPFSGateways))
	var wg sync.WaitGroup

	for _, gateway := range r.config.IPFSGateways {
		wg.Add(1)
		go func(gw string) {
			defer wg.Done()

			url := gatewayURL(gw, cid)
			var metadata domain.TicketMetadata
			if err := r.httpClient.GetNoRetry(ctx, url, &metadata); err != nil {
				resultCh <- result{url: url, err: err}
				return
			}
			resultCh <- result{url: url, metadata: &metadata}
		}(gateway)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var errs []error
	for res := range resultCh {
		if res.err == nil {
			logger.DebugCtx(ctx, "Retrieved ticket metadata", zap.String("url", res.url))
			return res.metadata, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", res.url, res.err))
	}

	return nil, fmt.Errorf("%w: cid %s: %w", domain.ErrMetadataNotFound, cid, errors.Join(errs...))
}
