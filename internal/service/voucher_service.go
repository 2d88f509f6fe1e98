package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"custodial-voucher/internal/core/domain"
	"custodial-voucher/internal/core/ports"
	"custodial-voucher/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const lockWaitStep = 50 * time.Millisecond

// VoucherPolicy holds the issuance parameters of the lifecycle manager.
type VoucherPolicy struct {
	Issuer        string        // signer identity folded into every voucher id
	ExpiryDays    int           // validity window of a fresh voucher
	IssueAttempts int           // compare-and-swap rounds before giving up
	LockTTL       time.Duration // issuance lock lease, only used with a lock
}

// VoucherServiceImpl implements ports.VoucherService.
type VoucherServiceImpl struct {
	resRepo    ports.ReservationRepository
	walletSvc  ports.WalletService
	builder    ports.VoucherBuilder
	signer     ports.VoucherSigner
	transactor ports.DBTransactor
	lock       ports.IssuanceLock // optional
	auditSvc   ports.AuditService
	clock      ports.Clock
	policy     VoucherPolicy
	log        zerolog.Logger
}

// NewVoucherService creates a new VoucherServiceImpl. lock may be nil.
func NewVoucherService(
	resRepo ports.ReservationRepository,
	walletSvc ports.WalletService,
	builder ports.VoucherBuilder,
	signer ports.VoucherSigner,
	transactor ports.DBTransactor,
	lock ports.IssuanceLock,
	auditSvc ports.AuditService,
	clock ports.Clock,
	policy VoucherPolicy,
	log zerolog.Logger,
) *VoucherServiceImpl {
	if policy.IssueAttempts <= 0 {
		policy.IssueAttempts = 1
	}
	return &VoucherServiceImpl{
		resRepo:    resRepo,
		walletSvc:  walletSvc,
		builder:    builder,
		signer:     signer,
		transactor: transactor,
		lock:       lock,
		auditSvc:   auditSvc,
		clock:      clock,
		policy:     policy,
		log:        log,
	}
}

// IssueOrReuse returns the reservation's voucher, signing a new one when none
// is attached or the attached one has expired.
//
// The write is a compare-and-swap on (status = reserved, previous voucher id),
// so two concurrent callers can never both attach a voucher: the loser re-reads
// and returns the winner's.
func (s *VoucherServiceImpl) IssueOrReuse(ctx context.Context, reservationID, userID uuid.UUID) (*domain.SignedVoucher, error) {
	if s.lock != nil {
		release := s.acquireIssuanceLock(ctx, reservationID)
		defer release()
	}

	var targetAddress string
	for attempt := 1; attempt <= s.policy.IssueAttempts; attempt++ {
		res, err := s.loadOwned(ctx, reservationID, userID)
		if err != nil {
			return nil, err
		}

		now := s.clock.Now()
		if existing := res.ValidVoucher(now); existing != nil {
			s.auditSvc.Log(ctx, domain.NewAuditLog(userID, domain.AuditActionVoucherReused, "reservation", reservationID.String()))
			return existing, nil
		}

		if targetAddress == "" {
			targetAddress, err = s.walletSvc.Address(ctx, userID)
			if err != nil {
				return nil, err
			}
		}

		sv, err := s.signFresh(res, targetAddress, now)
		if err != nil {
			return nil, err
		}

		attached, err := s.resRepo.AttachVoucher(ctx, res.ID, res.CurrentVoucherID(), sv)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("attach voucher: %w", err))
		}
		if attached {
			s.log.Info().
				Str("reservation_id", reservationID.String()).
				Str("voucher_id", sv.Voucher.VoucherID).
				Int64("expiry", sv.Voucher.Expiry).
				Msg("voucher issued")
			s.auditSvc.Log(ctx, domain.NewAuditLog(userID, domain.AuditActionVoucherIssued, "reservation", reservationID.String()))
			return sv, nil
		}

		s.log.Debug().
			Str("reservation_id", reservationID.String()).
			Int("attempt", attempt).
			Msg("voucher attach lost race, re-reading")
	}

	// Out of attempts: the last lost round may still have a valid winner.
	res, err := s.loadOwned(ctx, reservationID, userID)
	if err != nil {
		return nil, err
	}
	if winner := res.ValidVoucher(s.clock.Now()); winner != nil {
		s.auditSvc.Log(ctx, domain.NewAuditLog(userID, domain.AuditActionVoucherReused, "reservation", reservationID.String()))
		return winner, nil
	}
	return nil, apperror.ErrIssuanceConflict()
}

// ValidateForMint decides whether a presented voucher may be used to mint.
// Signature checks alone do not consider expiry; this does.
func (s *VoucherServiceImpl) ValidateForMint(ctx context.Context, sv *domain.SignedVoucher) error {
	if sv == nil {
		return apperror.ErrInvalidVoucher("voucher is missing")
	}
	if !s.signer.Verify(&sv.Voucher, sv.Signature) {
		return apperror.ErrInvalidVoucher("signature does not match")
	}
	if sv.Voucher.IsExpired(s.clock.Now()) {
		return apperror.ErrVoucherExpired()
	}

	res, err := s.resRepo.GetByID(ctx, sv.Voucher.ReservationID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("get reservation: %w", err))
	}
	if res == nil {
		return apperror.ErrNotFound("reservation")
	}
	if !res.IsIssuable() {
		return apperror.ErrAlreadyProcessed()
	}
	if res.Voucher == nil || res.Voucher.Voucher != sv.Voucher || res.Voucher.Signature != sv.Signature {
		return apperror.ErrInvalidVoucher("voucher is not the current one for this reservation")
	}
	return nil
}

// ConfirmMint records a confirmed mint against the reservation and closes it.
// Only the reservation owner may confirm. Repeating a confirmation for the
// same ledger transaction is a no-op.
func (s *VoucherServiceImpl) ConfirmMint(ctx context.Context, reservationID, userID uuid.UUID, voucherID string, receipt domain.MintReceipt) error {
	if receipt.TxID == "" || receipt.AssetIndex == 0 {
		return apperror.Validation("receipt must carry a transaction id and asset index")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	res, err := s.resRepo.GetByIDForUpdate(ctx, dbTx, reservationID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("lock reservation: %w", err))
	}
	if res == nil {
		return apperror.ErrNotFound("reservation")
	}
	if res.UserID != userID {
		return apperror.ErrForbidden()
	}
	if res.Status == domain.ReservationStatusClaimed && res.MintTxID != nil && *res.MintTxID == receipt.TxID {
		return nil
	}
	if !res.IsIssuable() {
		return apperror.ErrAlreadyProcessed()
	}
	if res.Voucher == nil || res.Voucher.Voucher.VoucherID != voucherID {
		return apperror.ErrInvalidVoucher("voucher is not the current one for this reservation")
	}

	if err := s.resRepo.MarkClaimed(ctx, dbTx, reservationID, receipt); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("mark claimed: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("reservation_id", reservationID.String()).
		Str("tx_id", receipt.TxID).
		Uint64("asset_index", receipt.AssetIndex).
		Uint64("confirmed_round", receipt.ConfirmedRound).
		Msg("mint confirmed")
	s.auditSvc.Log(ctx, domain.NewAuditLog(res.UserID, domain.AuditActionMintConfirmed, "reservation", reservationID.String()))

	return nil
}

// Verify checks the signature only. Expired vouchers still verify.
func (s *VoucherServiceImpl) Verify(sv *domain.SignedVoucher) bool {
	return sv != nil && s.signer.Verify(&sv.Voucher, sv.Signature)
}

func (s *VoucherServiceImpl) loadOwned(ctx context.Context, reservationID, userID uuid.UUID) (*domain.Reservation, error) {
	res, err := s.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get reservation: %w", err))
	}
	if res == nil {
		return nil, apperror.ErrNotFound("reservation")
	}
	if res.UserID != userID {
		return nil, apperror.ErrForbidden()
	}
	if !res.IsIssuable() {
		return nil, apperror.ErrAlreadyProcessed()
	}
	return res, nil
}

// signFresh builds and signs a voucher. Nothing is returned unless both succeed.
func (s *VoucherServiceImpl) signFresh(res *domain.Reservation, targetAddress string, now time.Time) (*domain.SignedVoucher, error) {
	v, err := s.builder.Build(ports.BuildParams{
		ReservationID:  res.ID,
		TargetAddress:  targetAddress,
		AssetTitle:     res.AssetTitle,
		AssetType:      res.AssetType,
		Rarity:         res.Rarity,
		Level:          res.Level,
		MetadataURI:    res.MetadataURI,
		IssuerIdentity: s.policy.Issuer,
		ExpiryDays:     s.policy.ExpiryDays,
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build voucher: %w", err))
	}

	sig, err := s.signer.Sign(v)
	if err != nil {
		if errors.Is(err, domain.ErrConfiguration) {
			return nil, apperror.ErrConfiguration(err)
		}
		return nil, apperror.ErrCryptoFailure(fmt.Errorf("sign voucher: %w", err))
	}

	return &domain.SignedVoucher{Voucher: *v, Signature: sig, IssuedAt: now}, nil
}

// acquireIssuanceLock takes the per-reservation lock, waiting up to one lease
// for another holder. Lock errors only cost the narrowing; the CAS write still
// decides. The returned func releases whatever was taken.
func (s *VoucherServiceImpl) acquireIssuanceLock(ctx context.Context, reservationID uuid.UUID) func() {
	key := "voucher:issue:" + reservationID.String()
	waits := max(int(s.policy.LockTTL/lockWaitStep), 1)

	for i := 0; ; i++ {
		token, err := s.lock.Acquire(ctx, key, s.policy.LockTTL)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("issuance lock unavailable, relying on conditional update")
			return func() {}
		}
		if token != "" {
			return func() {
				if err := s.lock.Release(context.WithoutCancel(ctx), key, token); err != nil {
					s.log.Warn().Err(err).Str("key", key).Msg("failed to release issuance lock")
				}
			}
		}
		if i >= waits {
			return func() {}
		}
		select {
		case <-ctx.Done():
			return func() {}
		case <-time.After(lockWaitStep):
		}
	}
}
