// Package memory holds map-backed repositories with the same conditional-write
// semantics as the PostgreSQL adapters. Used for scenario and race tests.
package memory

import (
	"context"
	"sync"

	"custodial-voucher/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReservationStore implements ports.ReservationRepository.
type ReservationStore struct {
	mu     sync.Mutex
	rows   map[uuid.UUID]domain.Reservation
	writes int
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{rows: make(map[uuid.UUID]domain.Reservation)}
}

// Put inserts or replaces a reservation.
func (s *ReservationStore) Put(r domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[r.ID] = cloneReservation(r)
}

// Writes counts successful AttachVoucher and MarkClaimed calls.
func (s *ReservationStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *ReservationStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	out := cloneReservation(r)
	return &out, nil
}

// GetByIDForUpdate does not hold a row lock; MarkClaimed re-checks the status.
func (s *ReservationStore) GetByIDForUpdate(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*domain.Reservation, error) {
	return s.GetByID(ctx, id)
}

func (s *ReservationStore) AttachVoucher(_ context.Context, id uuid.UUID, prevVoucherID *string, sv *domain.SignedVoucher) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok || r.Status != domain.ReservationStatusReserved {
		return false, nil
	}
	if !sameID(r.CurrentVoucherID(), prevVoucherID) {
		return false, nil
	}
	cp := *sv
	r.Voucher = &cp
	s.rows[id] = r
	s.writes++
	return true, nil
}

func (s *ReservationStore) MarkClaimed(_ context.Context, _ pgx.Tx, id uuid.UUID, receipt domain.MintReceipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok || r.Status != domain.ReservationStatusReserved {
		return domain.ErrAlreadyProcessed
	}
	txID, assetIndex := receipt.TxID, receipt.AssetIndex
	r.Status = domain.ReservationStatusClaimed
	r.MintTxID = &txID
	r.AssetIndex = &assetIndex
	s.rows[id] = r
	s.writes++
	return nil
}

// WalletStore implements ports.WalletRepository.
type WalletStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.CustodialWallet
}

func NewWalletStore() *WalletStore {
	return &WalletStore{rows: make(map[uuid.UUID]domain.CustodialWallet)}
}

func (s *WalletStore) Create(_ context.Context, w *domain.CustodialWallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[w.UserID]; ok {
		return domain.ErrWalletExists
	}
	s.rows[w.UserID] = *w
	return nil
}

func (s *WalletStore) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.CustodialWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.rows[userID]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// Transactor implements ports.DBTransactor with transactions that do nothing.
type Transactor struct{}

func (Transactor) Begin(context.Context) (pgx.Tx, error) { return nopTx{}, nil }

type nopTx struct{ pgx.Tx }

func (nopTx) Commit(context.Context) error   { return nil }
func (nopTx) Rollback(context.Context) error { return nil }

func cloneReservation(r domain.Reservation) domain.Reservation {
	if r.Voucher != nil {
		v := *r.Voucher
		r.Voucher = &v
	}
	if r.MintTxID != nil {
		id := *r.MintTxID
		r.MintTxID = &id
	}
	if r.AssetIndex != nil {
		idx := *r.AssetIndex
		r.AssetIndex = &idx
	}
	return r
}

func sameID(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
