package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"custodial-voucher/internal/core/domain"
	"custodial-voucher/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditService_PersistsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(repo, zerolog.Nop())

	entry := domain.NewAuditLog(uuid.New(), domain.AuditActionVoucherIssued, "reservation", uuid.NewString())
	repo.EXPECT().Create(gomock.Any(), entry).Return(nil)

	svc.Log(context.Background(), entry)
	svc.Wait()
}

func TestAuditService_CancelledRequestStillPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(writeCtx context.Context, _ *domain.AuditLog) error {
			assert.NoError(t, writeCtx.Err())
			return nil
		})

	svc.Log(ctx, domain.NewAuditLog(uuid.New(), domain.AuditActionMintConfirmed, "reservation", "r1"))
	svc.Wait()
}

func TestAuditService_RepositoryErrorIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditRepository(ctrl)
	var buf bytes.Buffer
	svc := NewAuditService(repo, zerolog.New(&buf))

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	svc.Log(context.Background(), domain.NewAuditLog(uuid.New(), domain.AuditActionWalletProvisioned, "wallet", "ADDR"))
	svc.Wait()

	assert.Contains(t, buf.String(), "failed to persist audit log")
	assert.Contains(t, buf.String(), "WALLET_PROVISIONED")
}

func TestAuditService_NilRepositoryOnlyLogs(t *testing.T) {
	var buf bytes.Buffer
	svc := NewAuditService(nil, zerolog.New(&buf))

	svc.Log(context.Background(), domain.NewAuditLog(uuid.New(), domain.AuditActionVoucherReused, "reservation", "r1"))
	svc.Wait()

	assert.Contains(t, buf.String(), "VOUCHER_REUSED")
}
