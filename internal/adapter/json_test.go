package adapter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ticket-marketplace/internal/adapter"
)

func TestJSON_MarshalCanonical(t *testing.T) {
	codec := adapter.NewJSON()

	doc := map[string]any{
		"name":  "Summer Fest",
		"image": "ipfs://bafyimage",
		"attributes": []map[string]string{
			{"trait_type": "Seat", "value": "A1"},
		},
	}

	out, err := codec.MarshalCanonical(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"attributes":[{"trait_type":"Seat","value":"A1"}],"image":"ipfs://bafyimage","name":"Summer Fest"}`, string(out))

	var decoded map[string]any
	require.NoError(t, codec.Unmarshal(out, &decoded))
	assert.Equal(t, "Summer Fest", decoded["name"])
}

func TestJSON_MarshalCanonicalError(t *testing.T) {
	_, err := adapter.NewJSON().MarshalCanonical(make(chan int))
	assert.Error(t, err)
}

func TestClock_NowIsUTC(t *testing.T) {
	now := adapter.NewClock().Now()
	assert.Equal(t, time.UTC, now.Location())
}
