package postgres

import (
	"context"
	"errors"
	"fmt"

	"custodial-voucher/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const walletUserConstraint = "custodial_wallets_pkey"

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a wallet. A second wallet for the same user violates the
// primary key and is reported as domain.ErrWalletExists.
func (r *WalletRepo) Create(ctx context.Context, w *domain.CustodialWallet) error {
	query := `INSERT INTO custodial_wallets (user_id, address, private_key_encrypted, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, w.UserID, w.Address, w.PrivateKeyEncrypted, w.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == walletUserConstraint {
			return domain.ErrWalletExists
		}
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByUserID fetches the user's wallet, or nil if none exists.
func (r *WalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CustodialWallet, error) {
	query := `SELECT user_id, address, private_key_encrypted, created_at
		FROM custodial_wallets WHERE user_id = $1`

	w := &domain.CustodialWallet{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&w.UserID, &w.Address, &w.PrivateKeyEncrypted, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by user id: %w", err)
	}
	return w, nil
}
