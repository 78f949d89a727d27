package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ticket-marketplace/internal/adapter"
	"github.com/feral-file/ticket-marketplace/internal/domain"
	"github.com/feral-file/ticket-marketplace/internal/logger"
	"github.com/feral-file/ticket-marketplace/internal/mocks"
	"github.com/feral-file/ticket-marketplace/internal/storage"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// pngHeader is enough of a PNG file for content sniffing
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func validMintRequest() domain.MintRequest {
	return domain.MintRequest{
		EventName: "Concert",
		Seat:      "A1",
		Date:      "2025-12-31",
		Location:  "Arena",
		Price:     "0.1",
		Organizer: "Org",
		Image:     pngHeader,
		ImageName: "ticket.png",
	}
}

func setupUploader(t *testing.T) (storage.Uploader, *mocks.MockHTTPClient) {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	uploader := storage.NewUploader(httpClient, adapter.NewJSON(), &storage.Config{
		APIURL: "https://api.nft.storage/",
		APIKey: "secret",
	})
	return uploader, httpClient
}

func TestUploadTicketMetadata_Success(t *testing.T) {
	uploader, httpClient := setupUploader(t)
	ctx := context.Background()

	gomock.InOrder(
		httpClient.EXPECT().
			Post(gomock.Any(), "https://api.nft.storage/upload", map[string]string{
				"Content-Type":  "image/png",
				"Authorization": "Bearer secret",
			}, pngHeader).
			Return([]byte(`{"ok":true,"value":{"cid":"bafyimage"}}`), nil),
		httpClient.EXPECT().
			Post(gomock.Any(), "https://api.nft.storage/upload", map[string]string{
				"Content-Type":  "application/json",
				"Authorization": "Bearer secret",
			}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ map[string]string, body []byte) ([]byte, error) {
				var metadata domain.TicketMetadata
				require.NoError(t, json.Unmarshal(body, &metadata))
				assert.Equal(t, "Concert Ticket", metadata.Name)
				assert.Equal(t, "Ticket for Concert at Arena", metadata.Description)
				assert.Equal(t, "ipfs://bafyimage", metadata.Image)
				assert.Equal(t, "A1", metadata.Attribute(domain.TraitSeat))
				assert.Equal(t, "0.1 ETH", metadata.Attribute(domain.TraitPrice))
				return []byte(`{"ok":true,"value":{"cid":"bafymetadata"}}`), nil
			}),
	)

	uri, err := uploader.UploadTicketMetadata(ctx, validMintRequest())
	require.NoError(t, err)
	assert.Equal(t, "ipfs://bafymetadata", uri)
}

func TestUploadTicketMetadata_InvalidRequest(t *testing.T) {
	uploader, _ := setupUploader(t)

	req := validMintRequest()
	req.Seat = ""

	_, err := uploader.UploadTicketMetadata(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestUploadTicketMetadata_NotAnImage(t *testing.T) {
	uploader, _ := setupUploader(t)

	req := validMintRequest()
	req.Image = []byte("just some text")

	_, err := uploader.UploadTicketMetadata(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestUploadTicketMetadata_UploadFailures(t *testing.T) {
	tests := []struct {
		name     string
		response []byte
		err      error
		contains string
	}{
		{
			name:     "transport error",
			err:      errors.New("connection refused"),
			contains: "connection refused",
		},
		{
			name:     "rejected",
			response: []byte(`{"ok":false,"error":{"name":"Unauthorized","message":"invalid token"}}`),
			contains: "Unauthorized: invalid token",
		},
		{
			name:     "missing cid",
			response: []byte(`{"ok":true,"value":{}}`),
			contains: "missing cid",
		},
		{
			name:     "malformed response",
			response: []byte(`not json`),
			contains: "failed to decode upload response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uploader, httpClient := setupUploader(t)

			httpClient.EXPECT().
				Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.response, tt.err)

			_, err := uploader.UploadTicketMetadata(context.Background(), validMintRequest())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to upload ticket image")
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
