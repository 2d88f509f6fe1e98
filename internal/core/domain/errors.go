package domain

import "errors"

// Sentinel errors shared by the crypto primitives and the voucher lifecycle.
// Callers match them with errors.Is; apperror wraps them for transport.
var (
	// ErrConfiguration means a required key was not configured. Fatal at startup.
	ErrConfiguration = errors.New("configuration error")

	// ErrAuthentication means an envelope failed its GCM tag check (tamper or wrong key).
	ErrAuthentication = errors.New("authentication failed")

	// ErrMalformedEnvelope means an envelope could not be parsed at all.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrInvalidKeyLength means a symmetric key is not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrRandomnessUnavailable means the entropy source failed. Never retried with a weaker source.
	ErrRandomnessUnavailable = errors.New("randomness unavailable")

	// ErrAlreadyProcessed means the reservation is no longer in the reserved state.
	ErrAlreadyProcessed = errors.New("reservation already processed")

	// ErrVoucherConflict means issuance kept losing the compare-and-swap race.
	ErrVoucherConflict = errors.New("voucher issuance conflict")

	// ErrVoucherExpired means a voucher was presented after its expiry.
	ErrVoucherExpired = errors.New("voucher expired")

	// ErrWalletExists means the user already owns a custodial wallet.
	ErrWalletExists = errors.New("wallet already exists")
)
