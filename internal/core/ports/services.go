package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"custodial-voucher/internal/core/domain"

	"github.com/google/uuid"
)

// Clock supplies the current time. Injected so voucher ids and expiries are testable.
type Clock interface {
	Now() time.Time
}

// Vault seals and opens private key material with the configured key.
type Vault interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(envelope string) ([]byte, error)
}

// WalletGenerator produces fresh custodial keypairs. It persists nothing.
type WalletGenerator interface {
	Generate() (*domain.GeneratedKeypair, error)
	DeriveAddress(publicKey []byte) (string, error)
}

// VoucherBuilder assembles vouchers deterministically for a given instant.
type VoucherBuilder interface {
	Build(params BuildParams) (*domain.Voucher, error)
}

// BuildParams holds the inputs of a voucher.
type BuildParams struct {
	ReservationID  uuid.UUID
	TargetAddress  string
	AssetTitle     string
	AssetType      string
	Rarity         string
	Level          int64
	MetadataURI    string
	IssuerIdentity string
	ExpiryDays     int
}

// VoucherSigner signs and verifies vouchers with the admin key.
type VoucherSigner interface {
	Sign(v *domain.Voucher) (string, error)
	// Verify never errors: malformed input is simply an invalid signature.
	Verify(v *domain.Voucher, signature string) bool
}

// TokenService validates bearer tokens carrying the user identity.
type TokenService interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
}

// IssuanceLock is a best-effort distributed lock around voucher issuance.
type IssuanceLock interface {
	// Acquire returns a release token when the lock was taken, "" when held elsewhere.
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, error)
	Release(ctx context.Context, key string, token string) error
}

// --- Service Ports (Business Logic) ---

// VoucherService orchestrates the voucher lifecycle of a reservation.
type VoucherService interface {
	IssueOrReuse(ctx context.Context, reservationID, userID uuid.UUID) (*domain.SignedVoucher, error)
	ValidateForMint(ctx context.Context, sv *domain.SignedVoucher) error
	ConfirmMint(ctx context.Context, reservationID, userID uuid.UUID, voucherID string, receipt domain.MintReceipt) error
	Verify(sv *domain.SignedVoucher) bool
}

// WalletService provisions and unlocks custodial wallets.
type WalletService interface {
	Provision(ctx context.Context, userID uuid.UUID) (*domain.CustodialWallet, error)
	Address(ctx context.Context, userID uuid.UUID) (string, error)
	Unlock(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
