package domain

import (
	"time"

	"github.com/google/uuid"
)

// Voucher is a time-bounded authorization for one recipient to mint one asset.
// Its fields are immutable once signed; the signature covers all of them.
type Voucher struct {
	VoucherID     string    `json:"voucher_id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	TargetAddress string    `json:"target_address"`
	AssetTitle    string    `json:"asset_title"`
	AssetType     string    `json:"asset_type"`
	Rarity        string    `json:"rarity"`
	Level         int64     `json:"level"`
	MetadataURI   string    `json:"metadata_uri"`
	Expiry        int64     `json:"expiry"` // Unix seconds
}

// IsExpired reports whether the voucher is no longer valid at now.
func (v *Voucher) IsExpired(now time.Time) bool {
	return now.Unix() >= v.Expiry
}

// SignedVoucher pairs a voucher with its base64 signature.
type SignedVoucher struct {
	Voucher   Voucher   `json:"voucher"`
	Signature string    `json:"signature"`
	IssuedAt  time.Time `json:"issued_at"`
}

// MintReceipt is the typed result of a successful mint reported by the ledger.
type MintReceipt struct {
	TxID           string
	ConfirmedRound uint64
	AssetIndex     uint64
}
