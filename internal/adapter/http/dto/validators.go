package dto

import (
	"regexp"

	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	voucherIDRe = regexp.MustCompile(`^[0-9a-f]{64}$`)
	txIDRe      = regexp.MustCompile(`^[A-Z2-7]{52}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("algo_address", validateAlgoAddress)
		_ = v.RegisterValidation("algo_txid", validateTxID)
		_ = v.RegisterValidation("voucher_id", validateVoucherID)
	}
}

// validateAlgoAddress accepts only checksummed ledger addresses.
func validateAlgoAddress(fl validator.FieldLevel) bool {
	_, err := types.DecodeAddress(fl.Field().String())
	return err == nil
}

// validateTxID accepts a base32 transaction id without padding.
func validateTxID(fl validator.FieldLevel) bool {
	return txIDRe.MatchString(fl.Field().String())
}

// validateVoucherID accepts a lowercase hex BLAKE2b-256 digest.
func validateVoucherID(fl validator.FieldLevel) bool {
	return voucherIDRe.MatchString(fl.Field().String())
}
