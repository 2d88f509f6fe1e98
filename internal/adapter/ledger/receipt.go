// Package ledger decodes responses of the external ledger node into domain types.
package ledger

import (
	"errors"
	"fmt"
	"strings"

	"custodial-voucher/internal/core/domain"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/common/models"
	sdkjson "github.com/algorand/go-algorand-sdk/v2/encoding/json"
)

var (
	ErrEmptyResponse = errors.New("empty ledger response")
	ErrMissingTxID   = errors.New("transaction id is required")
	ErrTxRejected    = errors.New("transaction rejected by the ledger")
	ErrTxPending     = errors.New("transaction not yet confirmed")
	ErrNoAssetIndex  = errors.New("confirmed transaction did not create an asset")
)

// ParseMintReceipt reads a pending-transaction response for a mint and
// returns the receipt. Only the documented top-level fields are consulted;
// a response missing any of them is refused rather than searched.
func ParseMintReceipt(txID string, body []byte) (domain.MintReceipt, error) {
	txID = strings.TrimSpace(txID)
	if txID == "" {
		return domain.MintReceipt{}, ErrMissingTxID
	}
	if len(body) == 0 {
		return domain.MintReceipt{}, ErrEmptyResponse
	}

	var resp models.PendingTransactionResponse
	if err := sdkjson.LenientDecode(body, &resp); err != nil {
		return domain.MintReceipt{}, fmt.Errorf("decode pending transaction: %w", err)
	}

	if resp.PoolError != "" {
		return domain.MintReceipt{}, fmt.Errorf("%w: %s", ErrTxRejected, resp.PoolError)
	}
	if resp.ConfirmedRound == 0 {
		return domain.MintReceipt{}, ErrTxPending
	}
	if resp.AssetIndex == 0 {
		return domain.MintReceipt{}, ErrNoAssetIndex
	}

	return domain.MintReceipt{
		TxID:           txID,
		ConfirmedRound: resp.ConfirmedRound,
		AssetIndex:     resp.AssetIndex,
	}, nil
}
