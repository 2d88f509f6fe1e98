package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"custodial-voucher/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReservationRepository reads reservations and writes voucher fields conditionally.
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	// GetByIDForUpdate locks the row. This MUST be called within a transaction.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Reservation, error)
	// AttachVoucher is a compare-and-swap: it writes sv only while the reservation
	// is still reserved and its current voucher id equals prevVoucherID (nil = none).
	// Returns false, nil when another writer got there first.
	AttachVoucher(ctx context.Context, id uuid.UUID, prevVoucherID *string, sv *domain.SignedVoucher) (bool, error)
	// MarkClaimed transitions a reserved reservation to claimed inside tx.
	MarkClaimed(ctx context.Context, tx pgx.Tx, id uuid.UUID, receipt domain.MintReceipt) error
}

// WalletRepository persists custodial wallets, one per user.
type WalletRepository interface {
	// Create returns domain.ErrWalletExists if the user already has a wallet.
	Create(ctx context.Context, wallet *domain.CustodialWallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CustodialWallet, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
