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

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	generator  ports.WalletGenerator
	vault      ports.Vault
	auditSvc   ports.AuditService
	clock      ports.Clock
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	generator ports.WalletGenerator,
	vault ports.Vault,
	auditSvc ports.AuditService,
	clock ports.Clock,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		generator:  generator,
		vault:      vault,
		auditSvc:   auditSvc,
		clock:      clock,
		log:        log,
	}
}

// Provision returns the user's custodial wallet, creating it on first call.
// Concurrent first calls converge on a single wallet through the unique
// constraint on user_id.
func (s *WalletServiceImpl) Provision(ctx context.Context, userID uuid.UUID) (*domain.CustodialWallet, error) {
	existing, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	kp, err := s.generator.Generate()
	if err != nil {
		return nil, apperror.ErrCryptoFailure(fmt.Errorf("generate keypair: %w", err))
	}
	defer kp.Zero()

	sealed, err := s.vault.Encrypt(kp.PrivateKey)
	if err != nil {
		return nil, apperror.ErrCryptoFailure(fmt.Errorf("seal private key: %w", err))
	}

	wallet := &domain.CustodialWallet{
		UserID:              userID,
		Address:             kp.Address,
		PrivateKeyEncrypted: sealed,
		CreatedAt:           s.clock.Now().Truncate(time.Microsecond),
	}

	// A wallet is only stored once its envelope is known to unlock.
	opened, err := s.openWallet(wallet)
	if err != nil {
		return nil, apperror.ErrCryptoFailure(fmt.Errorf("verify sealed key: %w", err))
	}
	zero(opened)

	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		if !errors.Is(err, domain.ErrWalletExists) {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("create wallet: %w", err))
		}
		winner, getErr := s.walletRepo.GetByUserID(ctx, userID)
		if getErr != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("re-read wallet: %w", getErr))
		}
		if winner == nil {
			return nil, apperror.InternalError(errors.New("wallet vanished after unique violation"))
		}
		return winner, nil
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("address", wallet.Address).
		Msg("custodial wallet provisioned")

	s.auditSvc.Log(ctx, domain.NewAuditLog(userID, domain.AuditActionWalletProvisioned, "wallet", wallet.Address))

	return wallet, nil
}

// Address returns the chain address of the user's wallet.
func (s *WalletServiceImpl) Address(ctx context.Context, userID uuid.UUID) (string, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return "", apperror.ErrWalletNotFound()
	}
	return wallet.Address, nil
}

// Unlock opens the sealed private key of the user's wallet. The caller owns
// the returned slice and should zero it when done. Decryption failures and a
// key that does not match the stored address both surface as WAL_001.
func (s *WalletServiceImpl) Unlock(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	privateKey, err := s.openWallet(wallet)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("wallet could not be unlocked")
		return nil, apperror.ErrWalletAccess(err)
	}
	return privateKey, nil
}

// openWallet decrypts the sealed key and checks it against the wallet address.
func (s *WalletServiceImpl) openWallet(wallet *domain.CustodialWallet) ([]byte, error) {
	privateKey, err := s.vault.Decrypt(wallet.PrivateKeyEncrypted)
	if err != nil {
		return nil, err
	}

	address, err := addressOfPrivateKey(privateKey)
	if err != nil || address != wallet.Address {
		zero(privateKey)
		return nil, fmt.Errorf("%w: key does not match address", domain.ErrAuthentication)
	}
	return privateKey, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
