package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"custodial-voucher/internal/core/domain"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Vouchers (VCH) ----

func ErrAlreadyProcessed() *AppError {
	return Wrap("VCH_001", "Reservation has already been processed", http.StatusConflict, domain.ErrAlreadyProcessed)
}

func ErrNotFound(entity string) *AppError {
	return New("VCH_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrForbidden() *AppError {
	return New("VCH_003", "Reservation belongs to another user", http.StatusForbidden)
}

func ErrInvalidVoucher(reason string) *AppError {
	return New("VCH_004", fmt.Sprintf("Invalid voucher: %s", reason), http.StatusUnprocessableEntity)
}

func ErrVoucherExpired() *AppError {
	return Wrap("VCH_005", "Voucher has expired", http.StatusGone, domain.ErrVoucherExpired)
}

func ErrIssuanceConflict() *AppError {
	return Wrap("VCH_006", "Voucher issuance is busy, retry later", http.StatusServiceUnavailable, domain.ErrVoucherConflict)
}

// ---- Wallets (WAL) ----

// ErrWalletAccess never carries key material; err is kept for errors.Is only.
func ErrWalletAccess(err error) *AppError {
	return Wrap("WAL_001", "Cannot access wallet", http.StatusForbidden, err)
}

func ErrWalletNotFound() *AppError {
	return New("WAL_002", "Wallet not found", http.StatusNotFound)
}

// ---- Ledger (LED) ----

func ErrLedgerResponse(err error) *AppError {
	return Wrap("LED_001", "Unusable ledger response", http.StatusUnprocessableEntity, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimited() *AppError {
	return New("RATE_001", "Too many requests", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrCryptoFailure(err error) *AppError {
	return Wrap("SYS_002", "Cryptographic operation failed", http.StatusInternalServerError, err)
}

func ErrConfiguration(err error) *AppError {
	return Wrap("SYS_003", "Service is not configured", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

// Code extracts the AppError code from err, or "" if err is not an AppError.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
