package service

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"custodial-voucher/internal/core/domain"
	"custodial-voucher/internal/core/ports"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

const secondsPerDay = 86400

// Field tags of the canonical payload. Order and values are part of the
// signed format and must never change for a given envelope version.
const (
	tagVoucherID byte = iota + 1
	tagReservationID
	tagTargetAddress
	tagAssetTitle
	tagAssetType
	tagRarity
	tagLevel
	tagMetadataURI
	tagExpiry
	tagIssuer
	tagIssuedAt
)

// DefaultVoucherBuilder implements ports.VoucherBuilder.
type DefaultVoucherBuilder struct {
	clock ports.Clock
}

// NewVoucherBuilder creates a builder reading time from clock.
func NewVoucherBuilder(clock ports.Clock) *DefaultVoucherBuilder {
	return &DefaultVoucherBuilder{clock: clock}
}

// Build assembles a voucher. The id hashes the reservation, the issuer and
// the current instant, so two builds at different instants never collide.
func (b *DefaultVoucherBuilder) Build(p ports.BuildParams) (*domain.Voucher, error) {
	if p.ReservationID == uuid.Nil {
		return nil, fmt.Errorf("reservation id is required")
	}
	if strings.TrimSpace(p.TargetAddress) == "" {
		return nil, fmt.Errorf("target address is required")
	}
	if strings.TrimSpace(p.IssuerIdentity) == "" {
		return nil, fmt.Errorf("issuer identity is required")
	}
	if p.ExpiryDays <= 0 {
		return nil, fmt.Errorf("expiry days must be positive, got %d", p.ExpiryDays)
	}

	now := b.clock.Now()

	return &domain.Voucher{
		VoucherID:     voucherID(p.ReservationID, p.IssuerIdentity, now.UnixMilli()),
		ReservationID: p.ReservationID,
		TargetAddress: p.TargetAddress,
		AssetTitle:    p.AssetTitle,
		AssetType:     p.AssetType,
		Rarity:        p.Rarity,
		Level:         p.Level,
		MetadataURI:   p.MetadataURI,
		Expiry:        now.Unix() + int64(p.ExpiryDays)*secondsPerDay,
	}, nil
}

func voucherID(reservationID uuid.UUID, issuer string, issuedAtMilli int64) string {
	var w tlvWriter
	w.putBytes(tagReservationID, reservationID[:])
	w.putString(tagIssuer, issuer)
	w.putInt64(tagIssuedAt, issuedAtMilli)
	sum := blake2b.Sum256(w.buf)
	return hex.EncodeToString(sum[:])
}

// CanonicalPayload is the exact byte string covered by a voucher signature.
// Every field is tag-length-value encoded, so no field content can be read
// as a boundary.
func CanonicalPayload(v *domain.Voucher) []byte {
	var w tlvWriter
	w.putString(tagVoucherID, v.VoucherID)
	w.putBytes(tagReservationID, v.ReservationID[:])
	w.putString(tagTargetAddress, v.TargetAddress)
	w.putString(tagAssetTitle, v.AssetTitle)
	w.putString(tagAssetType, v.AssetType)
	w.putString(tagRarity, v.Rarity)
	w.putInt64(tagLevel, v.Level)
	w.putString(tagMetadataURI, v.MetadataURI)
	w.putInt64(tagExpiry, v.Expiry)
	return w.buf
}

// tlvWriter appends 1-byte tag, 4-byte big-endian length, value.
type tlvWriter struct {
	buf []byte
}

func (w *tlvWriter) putBytes(tag byte, value []byte) {
	w.buf = append(w.buf, tag)
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(len(value)))
	w.buf = append(w.buf, value...)
}

func (w *tlvWriter) putString(tag byte, value string) {
	w.putBytes(tag, []byte(value))
}

func (w *tlvWriter) putInt64(tag byte, value int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(value))
	w.putBytes(tag, b[:])
}
