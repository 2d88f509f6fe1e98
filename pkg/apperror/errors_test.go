package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"custodial-voucher/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("VCH_002", "reservation not found", http.StatusNotFound),
			expected: "[VCH_002] reservation not found",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VCH_003", "test", http.StatusForbidden)
	assert.Nil(t, appErr.Unwrap())
}

func TestVoucherErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"AlreadyProcessed", ErrAlreadyProcessed(), "VCH_001", 409},
		{"NotFound", ErrNotFound("reservation"), "VCH_002", 404},
		{"Forbidden", ErrForbidden(), "VCH_003", 403},
		{"InvalidVoucher", ErrInvalidVoucher("bad signature"), "VCH_004", 422},
		{"VoucherExpired", ErrVoucherExpired(), "VCH_005", 410},
		{"IssuanceConflict", ErrIssuanceConflict(), "VCH_006", 503},
		{"WalletAccess", ErrWalletAccess(domain.ErrAuthentication), "WAL_001", 403},
		{"WalletNotFound", ErrWalletNotFound(), "WAL_002", 404},
		{"InvalidToken", ErrInvalidToken(), "AUTH_001", 401},
		{"Validation", Validation("bad"), "REQ_001", 400},
		{"RateLimited", ErrRateLimited(), "RATE_001", 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	assert.ErrorIs(t, ErrAlreadyProcessed(), domain.ErrAlreadyProcessed)
	assert.ErrorIs(t, ErrVoucherExpired(), domain.ErrVoucherExpired)
	assert.ErrorIs(t, ErrWalletAccess(fmt.Errorf("open: %w", domain.ErrAuthentication)), domain.ErrAuthentication)
}

func TestWalletAccess_HidesCause(t *testing.T) {
	err := ErrWalletAccess(domain.ErrAuthentication)
	assert.Equal(t, "Cannot access wallet", err.Message)
}

func TestCode(t *testing.T) {
	assert.Equal(t, "VCH_001", Code(fmt.Errorf("issue: %w", ErrAlreadyProcessed())))
	assert.Equal(t, "", Code(errors.New("plain")))
}
