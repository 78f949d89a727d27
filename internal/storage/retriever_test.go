package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ticket-marketplace/internal/domain"
	"github.com/feral-file/ticket-marketplace/internal/mocks"
	"github.com/feral-file/ticket-marketplace/internal/storage"
)

func setupRetriever(t *testing.T, gateways ...string) (storage.Retriever, *mocks.MockHTTPClient) {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	return storage.NewRetriever(httpClient, &storage.Config{IPFSGateways: gateways}), httpClient
}

func fillMetadata(name string) func(context.Context, string, interface{}) error {
	return func(_ context.Context, _ string, result interface{}) error {
		metadata := result.(*domain.TicketMetadata)
		metadata.Name = name
		metadata.Image = "ipfs://bafyimage"
		return nil
	}
}

func TestRetrieveTicketMetadata_IPFSURI(t *testing.T) {
	retriever, httpClient := setupRetriever(t, "https://nftstorage.link/")

	httpClient.EXPECT().
		GetNoRetry(gomock.Any(), "https://nftstorage.link/ipfs/bafymetadata", gomock.Any()).
		DoAndReturn(fillMetadata("Concert Ticket"))

	metadata, err := retriever.RetrieveTicketMetadata(context.Background(), "ipfs://bafymetadata")
	require.NoError(t, err)
	require.NotNil(t, metadata)
	assert.Equal(t, "Concert Ticket", metadata.Name)
}

func TestRetrieveTicketMetadata_GatewayURL(t *testing.T) {
	retriever, httpClient := setupRetriever(t, "https://ipfs.io")

	httpClient.EXPECT().
		GetNoRetry(gomock.Any(), "https://ipfs.io/ipfs/bafymetadata/0.json", gomock.Any()).
		DoAndReturn(fillMetadata("Concert Ticket"))

	metadata, err := retriever.RetrieveTicketMetadata(context.Background(), "https://somegateway.example/ipfs/bafymetadata/0.json")
	require.NoError(t, err)
	assert.Equal(t, "Concert Ticket", metadata.Name)
}

func TestRetrieveTicketMetadata_FirstWorkingGatewayWins(t *testing.T) {
	retriever, httpClient := setupRetriever(t, "https://broken.example", "https://ipfs.io")

	httpClient.EXPECT().
		GetNoRetry(gomock.Any(), "https://broken.example/ipfs/bafymetadata", gomock.Any()).
		Return(errors.New("unexpected status code: 504")).
		AnyTimes()
	httpClient.EXPECT().
		GetNoRetry(gomock.Any(), "https://ipfs.io/ipfs/bafymetadata", gomock.Any()).
		DoAndReturn(fillMetadata("Concert Ticket"))

	metadata, err := retriever.RetrieveTicketMetadata(context.Background(), "ipfs://bafymetadata")
	require.NoError(t, err)
	assert.Equal(t, "Concert Ticket", metadata.Name)
}

func TestRetrieveTicketMetadata_AllGatewaysFail(t *testing.T) {
	retriever, httpClient := setupRetriever(t, "https://a.example", "https://b.example")

	httpClient.EXPECT().
		GetNoRetry(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("unexpected status code: 404")).
		Times(2)

	metadata, err := retriever.RetrieveTicketMetadata(context.Background(), "ipfs://bafymissing")
	require.Error(t, err)
	assert.Nil(t, metadata)
	assert.ErrorIs(t, err, domain.ErrMetadataNotFound)
}

func TestRetrieveTicketMetadata_HTTPURL(t *testing.T) {
	retriever, httpClient := setupRetriever(t, "https://ipfs.io")

	httpClient.EXPECT().
		Get(gomock.Any(), "https://example.com/ticket/1.json", gomock.Any()).
		DoAndReturn(fillMetadata("Hosted Ticket"))

	metadata, err := retriever.RetrieveTicketMetadata(context.Background(), "https://example.com/ticket/1.json")
	require.NoError(t, err)
	assert.Equal(t, "Hosted Ticket", metadata.Name)
}

func TestRetrieveTicketMetadata_Unsupported(t *testing.T) {
	retriever, _ := setupRetriever(t, "https://ipfs.io")

	for _, uri := range []string{"", "ar://abc", "ipfs://"} {
		metadata, err := retriever.RetrieveTicketMetadata(context.Background(), uri)
		require.Error(t, err, uri)
		assert.Nil(t, metadata)
	}
}

func TestRetrieveTicketMetadata_NoGateways(t *testing.T) {
	retriever, _ := setupRetriever(t)

	_, err := retriever.RetrieveTicketMetadata(context.Background(), "ipfs://bafymetadata")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no IPFS gateways configured")
}
