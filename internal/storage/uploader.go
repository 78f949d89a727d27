package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/feral-file/ticket-marketplace/internal/adapter"
	"github.com/feral-file/ticket-marketplace/internal/domain"
	"github.com/feral-file/ticket-marketplace/internal/logger"
)

// Uploader publishes ticket metadata to content-addressed storage
//
//go:generate mockgen -source=uploader.go -destination=../mocks/storage_uploader.go -package=mocks -mock_names=Uploader=MockUploader
type Uploader interface {
	// UploadTicketMetadata uploads the ticket image, then the metadata document referencing it,
	// and returns the ipfs:// URI of the metadata document
	UploadTicketMetadata(ctx context.Context, req domain.MintRequest) (string, error)
}

type uploader struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	config     *Config
}

// NewUploader creates a new metadata uploader
func NewUploader(httpClient adapter.HTTPClient, json adapter.JSON, config *Config) Uploader {
	return &uploader{
		httpClient: httpClient,
		json:       json,
		config:     config,
	}
}

func (u *uploader) UploadTicketMetadata(ctx context.Context, req domain.MintRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	mime := mimetype.Detect(req.Image)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", fmt.Errorf("%w: unsupported image type %s", domain.ErrInvalidImage, mime.String())
	}

	imageCID, err := u.upload(ctx, req.Image, mime.String())
	if err != nil {
		return "", fmt.Errorf("failed to upload ticket image: %w", err)
	}

	logger.InfoCtx(ctx, "Uploaded ticket image",
		zap.String("cid", imageCID),
		zap.String("mimeType", mime.String()),
		zap.String("fileName", req.ImageName),
		zap.Int("size", len(req.Image)))

	metadata := domain.BuildTicketMetadata(req, IPFSURI(imageCID))
	body, err := u.json.MarshalCanonical(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ticket metadata: %w", err)
	}

	metadataCID, err := u.upload(ctx, body, "application/json")
	if err != nil {
		return "", fmt.Errorf("failed to upload ticket metadata: %w", err)
	}

	uri := IPFSURI(metadataCID)
	logger.InfoCtx(ctx, "Uploaded ticket metadata",
		zap.String("cid", metadataCID),
		zap.String("tokenURI", uri))

	return uri, nil
}

// upload posts a single file to the pinning service and returns its CID
func (u *uploader) upload(ctx context.Context, data []byte, contentType string) (string, error) {
	url := fmt.Sprintf("%s/upload", strings.TrimSuffix(u.config.APIURL, "/"))
	headers := map[string]string{
		"Content-Type":  contentType,
		"Authorization": fmt.Sprintf("Bearer %s", u.config.APIKey),
	}

	respBody, err := u.httpClient.Post(ctx, url, headers, data)
	if err != nil {
		return "", err
	}

	var resp uploadResponse
	if err := u.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if !resp.OK {
		if resp.Error != nil {
			return "", fmt.Errorf("upload rejected: %s: %s", resp.Error.Name, resp.Error.Message)
		}
		return "", errors.New("upload rejected")
	}
	if resp.Value.CID == "" {
		return "", errors.New("upload response missing cid")
	}

	return resp.Value.CID, nil
}
