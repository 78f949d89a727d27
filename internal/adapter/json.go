package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// JSON encodes pinned metadata documents and published events
type JSON interface {
	Marshal(v any) ([]byte, error)
	// MarshalCanonical encodes v in RFC 8785 canonical form
	MarshalCanonical(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type stdJSON struct{}

// NewJSON returns the encoding/json backed codec
func NewJSON() JSON {
	return stdJSON{}
}

func (stdJSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (j stdJSON) MarshalCanonical(v any) ([]byte, error) {
	raw, err := j.Marshal(v)
	if err != nil {
		return nil, err
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize json: %w", err)
	}
	return canonical, nil
}

func (stdJSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
