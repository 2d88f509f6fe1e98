package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"custodial-voucher/internal/core/domain"

	"github.com/google/uuid"
)

// VoucherDTO is the wire form of a voucher. Field names match the signed payload.
type VoucherDTO struct {
	VoucherID     string `json:"voucher_id" binding:"required,voucher_id"`
	ReservationID string `json:"reservation_id" binding:"required,uuid"`
	TargetAddress string `json:"target_address" binding:"required,algo_address"`
	AssetTitle    string `json:"asset_title"`
	AssetType     string `json:"asset_type"`
	Rarity        string `json:"rarity"`
	Level         int64  `json:"level" binding:"gte=0"`
	MetadataURI   string `json:"metadata_uri"`
	Expiry        int64  `json:"expiry" binding:"required,gt=0"` // Unix seconds
}

// SignedVoucherRequest is the body of the verify and validate endpoints.
type SignedVoucherRequest struct {
	Voucher   VoucherDTO `json:"voucher"`
	Signature string     `json:"signature" binding:"required,base64"`
}

// IssueVoucherResponse is the response body of voucher issuance.
type IssueVoucherResponse struct {
	Voucher   VoucherDTO `json:"voucher"`
	Signature string     `json:"signature"`
	IssuedAt  string     `json:"issued_at"`
}

// VerifyResponse reports a signature-only check.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// ValidateResponse reports that a voucher may be used to mint.
type ValidateResponse struct {
	VoucherID     string `json:"voucher_id"`
	ReservationID string `json:"reservation_id"`
	Eligible      bool   `json:"eligible"`
}

// MintConfirmationRequest carries the ledger's pending-transaction response
// for the mint transaction, unmodified.
type MintConfirmationRequest struct {
	VoucherID string          `json:"voucher_id" binding:"required,voucher_id"`
	TxID      string          `json:"tx_id" binding:"required,algo_txid"`
	Pending   json.RawMessage `json:"pending" binding:"required"`
}

// MintConfirmationResponse is the response body of a recorded mint.
type MintConfirmationResponse struct {
	ReservationID  string `json:"reservation_id"`
	Status         string `json:"status"`
	TxID           string `json:"tx_id"`
	ConfirmedRound uint64 `json:"confirmed_round"`
	AssetIndex     uint64 `json:"asset_index"`
}

// WalletResponse is the public view of a custodial wallet.
type WalletResponse struct {
	UserID    string `json:"user_id"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at,omitempty"`
}

// FromVoucher converts a domain voucher to its wire form.
func FromVoucher(v domain.Voucher) VoucherDTO {
	return VoucherDTO{
		VoucherID:     v.VoucherID,
		ReservationID: v.ReservationID.String(),
		TargetAddress: v.TargetAddress,
		AssetTitle:    v.AssetTitle,
		AssetType:     v.AssetType,
		Rarity:        v.Rarity,
		Level:         v.Level,
		MetadataURI:   v.MetadataURI,
		Expiry:        v.Expiry,
	}
}

// ToDomain converts the wire form back to a domain voucher.
func (d VoucherDTO) ToDomain() (domain.Voucher, error) {
	resID, err := uuid.Parse(d.ReservationID)
	if err != nil {
		return domain.Voucher{}, fmt.Errorf("reservation_id: %w", err)
	}
	return domain.Voucher{
		VoucherID:     d.VoucherID,
		ReservationID: resID,
		TargetAddress: d.TargetAddress,
		AssetTitle:    d.AssetTitle,
		AssetType:     d.AssetType,
		Rarity:        d.Rarity,
		Level:         d.Level,
		MetadataURI:   d.MetadataURI,
		Expiry:        d.Expiry,
	}, nil
}

// ToSignedVoucher converts a verify/validate request to a domain signed voucher.
func (r SignedVoucherRequest) ToSignedVoucher() (*domain.SignedVoucher, error) {
	v, err := r.Voucher.ToDomain()
	if err != nil {
		return nil, err
	}
	return &domain.SignedVoucher{Voucher: v, Signature: r.Signature}, nil
}

// FromSignedVoucher builds the issuance response.
func FromSignedVoucher(sv *domain.SignedVoucher) IssueVoucherResponse {
	return IssueVoucherResponse{
		Voucher:   FromVoucher(sv.Voucher),
		Signature: sv.Signature,
		IssuedAt:  sv.IssuedAt.UTC().Format(time.RFC3339),
	}
}

// FromWallet builds the public wallet view. The encrypted key is never copied.
func FromWallet(w *domain.CustodialWallet) WalletResponse {
	resp := WalletResponse{
		UserID:  w.UserID.String(),
		Address: w.Address,
	}
	if !w.CreatedAt.IsZero() {
		resp.CreatedAt = w.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
