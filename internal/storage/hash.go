package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"

	"github.com/feral-file/ticket-marketplace/internal/domain"
)

// MetadataHash returns the hex SHA-256 of the JCS canonical form of a metadata document,
// so that equal documents hash equally regardless of key order or whitespace
func MetadataHash(metadata *domain.TicketMetadata) (string, error) {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}

	return canonicalHash(raw)
}

// canonicalHash returns the hex SHA-256 of the JCS canonical form of a JSON document
func canonicalHash(raw []byte) (string, error) {
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize metadata: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
