package binance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_BookUpdate(t *testing.T) {
	frame := []byte(`{"bids":[["100.50","1.0"],["100.30","2.0"]],"asks":[["100.60","0.5"]]}`)

	bids, asks, err := Decode(frame)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Len(t, asks, 1)

	assert.Equal(t, "100.5", bids[0].Price.String())
	assert.Equal(t, "1", bids[0].Qty.String())
	assert.Equal(t, "100.6", asks[0].Price.String())
}

func TestDecode_MalformedFrame(t *testing.T) {
	_, _, err := Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecode_MissingBidsAsks(t *testing.T) {
	_, _, err := Decode([]byte(`{"foo":"bar"}`))
	assert.Error(t, err)
}

func TestDecode_BadDecimalString(t *testing.T) {
	_, _, err := Decode([]byte(`{"bids":[["nope","1.0"]],"asks":[]}`))
	assert.Error(t, err)
}

func TestURL(t *testing.T) {
	assert.Equal(t, "wss://stream.binance.com:9443/ws/ethbtc@depth20@100ms", URL("ethbtc"))
}
