package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"custodial-voucher/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = `id, user_id, status, asset_title, asset_type, rarity, level, metadata_uri,
		voucher, mint_tx_id, asset_index, created_at, updated_at`

// ReservationRepo implements ports.ReservationRepository.
// The signed voucher is stored as one JSONB document next to its id column,
// so a voucher and its signature are always written by the same statement.
type ReservationRepo struct {
	pool Pool
}

// NewReservationRepo creates a new ReservationRepo.
func NewReservationRepo(pool Pool) *ReservationRepo {
	return &ReservationRepo{pool: pool}
}

// GetByID fetches a reservation (without locking), or nil if it does not exist.
func (r *ReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get reservation by id: %w", err)
	}
	return res, nil
}

// GetByIDForUpdate fetches a reservation with a row lock.
// This MUST be called within a transaction.
func (r *ReservationRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`

	res, err := scanReservation(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get reservation for update: %w", err)
	}
	return res, nil
}

// AttachVoucher writes sv only if the row is still reserved and still carries
// prevVoucherID. Zero affected rows means another writer won.
func (r *ReservationRepo) AttachVoucher(ctx context.Context, id uuid.UUID, prevVoucherID *string, sv *domain.SignedVoucher) (bool, error) {
	doc, err := json.Marshal(sv)
	if err != nil {
		return false, fmt.Errorf("encode voucher: %w", err)
	}

	query := `UPDATE reservations
		SET voucher_id = $2, voucher = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'reserved' AND voucher_id IS NOT DISTINCT FROM $4::text`

	tag, err := r.pool.Exec(ctx, query, id, sv.Voucher.VoucherID, doc, prevVoucherID)
	if err != nil {
		return false, fmt.Errorf("attach voucher: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkClaimed closes a reserved reservation with the ledger receipt.
func (r *ReservationRepo) MarkClaimed(ctx context.Context, tx pgx.Tx, id uuid.UUID, receipt domain.MintReceipt) error {
	if receipt.AssetIndex > math.MaxInt64 {
		return fmt.Errorf("asset index %d out of range", receipt.AssetIndex)
	}

	query := `UPDATE reservations
		SET status = 'claimed', mint_tx_id = $2, asset_index = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'reserved'`

	tag, err := tx.Exec(ctx, query, id, receipt.TxID, int64(receipt.AssetIndex))
	if err != nil {
		return fmt.Errorf("mark reservation claimed: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var (
		res        domain.Reservation
		voucher    []byte
		mintTxID   *string
		assetIndex *int64
	)
	err := row.Scan(
		&res.ID, &res.UserID, &res.Status, &res.AssetTitle, &res.AssetType, &res.Rarity,
		&res.Level, &res.MetadataURI, &voucher, &mintTxID, &assetIndex,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if len(voucher) > 0 {
		sv := &domain.SignedVoucher{}
		if err := json.Unmarshal(voucher, sv); err != nil {
			return nil, fmt.Errorf("decode voucher: %w", err)
		}
		res.Voucher = sv
	}
	res.MintTxID = mintTxID
	if assetIndex != nil {
		idx := uint64(*assetIndex)
		res.AssetIndex = &idx
	}
	return &res, nil
}
