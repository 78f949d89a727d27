package storage

import (
	"fmt"
	"strings"

	"github.com/feral-file/ticket-marketplace/internal/domain"
)

// Config holds configuration for the content-addressed storage clients
type Config struct {
	// APIURL is the base URL of the pinning service upload API
	APIURL string
	// APIKey authenticates uploads as a bearer token
	APIKey string
	// IPFSGateways is the list of IPFS gateways to retrieve documents from
	IPFSGateways []string
}

// uploadResponse is the pinning service response of POST /upload
type uploadResponse struct {
	OK    bool `json:"ok"`
	Value struct {
		CID string `json:"cid"`
	} `json:"value"`
	Error *struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ParseCID extracts the content path (CID plus optional sub-path) from ipfs:// URIs and gateway URLs.
// ok is false for URIs that are not content addressed.
func ParseCID(uri string) (string, bool) {
	uri = strings.TrimSpace(uri)
	if cid, ok := strings.CutPrefix(uri, domain.IPFS_SCHEME); ok {
		cid = strings.TrimPrefix(cid, "ipfs/")
		return cid, cid != ""
	}

	if _, after, found := strings.Cut(uri, "/ipfs/"); found && after != "" {
		return after, true
	}

	return "", false
}

// IPFSURI returns the ipfs:// URI of a CID
func IPFSURI(cid string) string {
	return fmt.Sprintf("%s%s", domain.IPFS_SCHEME, cid)
}

func gatewayURL(gateway, cid string) string {
	return fmt.Sprintf("%s/ipfs/%s", strings.TrimSuffix(gateway, "/"), cid)
}
