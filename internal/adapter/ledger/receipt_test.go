package ledger

import (
	"testing"

	"custodial-voucher/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTxID = "KTSBYCJ4G4VLNVC6VTOWRKB3GLXZGRHEQEBIRI5HKMKR3E3CMJCA"

func TestParseMintReceipt(t *testing.T) {
	body := []byte(`{"pool-error":"","confirmed-round":31415,"asset-index":271828,"txn":{}}`)

	receipt, err := ParseMintReceipt(testTxID, body)
	require.NoError(t, err)
	assert.Equal(t, domain.MintReceipt{TxID: testTxID, ConfirmedRound: 31415, AssetIndex: 271828}, receipt)
}

func TestParseMintReceipt_IgnoresUnknownFields(t *testing.T) {
	body := []byte(`{"pool-error":"","confirmed-round":7,"asset-index":9,"future-field":{"x":1}}`)

	receipt, err := ParseMintReceipt(testTxID, body)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), receipt.AssetIndex)
}

func TestParseMintReceipt_Failures(t *testing.T) {
	tests := []struct {
		name string
		txID string
		body string
		want error
	}{
		{"missing tx id", "  ", `{"confirmed-round":1,"asset-index":1}`, ErrMissingTxID},
		{"empty body", testTxID, ``, ErrEmptyResponse},
		{"rejected", testTxID, `{"pool-error":"overspend","txn":{}}`, ErrTxRejected},
		{"pending", testTxID, `{"pool-error":"","txn":{}}`, ErrTxPending},
		{"no asset created", testTxID, `{"pool-error":"","confirmed-round":12,"txn":{}}`, ErrNoAssetIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMintReceipt(tt.txID, []byte(tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseMintReceipt_NestedAssetIndexIsNotSearched(t *testing.T) {
	// The index only appears inside an inner transaction: not a mint receipt.
	body := []byte(`{"pool-error":"","confirmed-round":12,"inner-txns":[{"asset-index":99,"pool-error":"","txn":{}}],"txn":{}}`)

	_, err := ParseMintReceipt(testTxID, body)
	assert.ErrorIs(t, err, ErrNoAssetIndex)
}

func TestParseMintReceipt_Malformed(t *testing.T) {
	_, err := ParseMintReceipt(testTxID, []byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode pending transaction")
}
