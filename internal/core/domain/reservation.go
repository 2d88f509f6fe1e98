package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the persisted status column of a reservation.
type ReservationStatus string

const (
	ReservationStatusReserved  ReservationStatus = "reserved"
	ReservationStatusMinted    ReservationStatus = "minted"
	ReservationStatusClaimed   ReservationStatus = "claimed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// LifecycleState is the voucher-centric view of a reservation.
// It is derived from the status column and the attached voucher.
type LifecycleState string

const (
	StateReserved       LifecycleState = "reserved"
	StateVoucherIssued  LifecycleState = "voucher_issued"
	StateVoucherExpired LifecycleState = "expired"
	StateClaimed        LifecycleState = "claimed"
)

// Reservation pre-assigns a specific NFT to a specific user before minting.
type Reservation struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Status      ReservationStatus `json:"status"`
	AssetTitle  string            `json:"asset_title"`
	AssetType   string            `json:"asset_type"`
	Rarity      string            `json:"rarity"`
	Level       int64             `json:"level"`
	MetadataURI string            `json:"metadata_uri"`
	Voucher     *SignedVoucher    `json:"voucher,omitempty"`
	MintTxID    *string           `json:"mint_tx_id,omitempty"`
	AssetIndex  *uint64           `json:"asset_index,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IsIssuable returns true if a voucher may be issued or reused.
func (r *Reservation) IsIssuable() bool {
	return r.Status == ReservationStatusReserved
}

// CurrentVoucherID returns the id of the attached voucher, or nil.
func (r *Reservation) CurrentVoucherID() *string {
	if r.Voucher == nil {
		return nil
	}
	id := r.Voucher.Voucher.VoucherID
	return &id
}

// ValidVoucher returns the attached voucher if it has not expired at now.
func (r *Reservation) ValidVoucher(now time.Time) *SignedVoucher {
	if r.Voucher == nil || r.Voucher.Voucher.IsExpired(now) {
		return nil
	}
	return r.Voucher
}

// State derives the lifecycle state at now.
func (r *Reservation) State(now time.Time) LifecycleState {
	switch {
	case r.Status == ReservationStatusClaimed || r.Status == ReservationStatusMinted:
		return StateClaimed
	case r.Voucher == nil:
		return StateReserved
	case r.Voucher.Voucher.IsExpired(now):
		return StateVoucherExpired
	default:
		return StateVoucherIssued
	}
}
