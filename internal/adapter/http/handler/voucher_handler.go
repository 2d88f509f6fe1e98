package handler

import (
	"custodial-voucher/internal/adapter/http/dto"
	"custodial-voucher/internal/adapter/http/middleware"
	"custodial-voucher/internal/adapter/ledger"
	"custodial-voucher/internal/core/domain"
	"custodial-voucher/internal/core/ports"
	"custodial-voucher/pkg/apperror"
	"custodial-voucher/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VoucherHandler handles voucher issuance, verification and mint confirmation.
type VoucherHandler struct {
	voucherSvc ports.VoucherService
	log        zerolog.Logger
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(voucherSvc ports.VoucherService, log zerolog.Logger) *VoucherHandler {
	return &VoucherHandler{voucherSvc: voucherSvc, log: log}
}

// Issue handles POST /api/v1/reservations/:id/voucher.
// A still-valid voucher is returned as is; otherwise a fresh one is signed.
func (h *VoucherHandler) Issue(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	resID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid reservation id"))
		return
	}

	sv, err := h.voucherSvc.IssueOrReuse(c.Request.Context(), resID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromSignedVoucher(sv))
}

// Verify handles POST /api/v1/vouchers/verify. It checks the signature only;
// expiry and reservation state are the job of Validate.
func (h *VoucherHandler) Verify(c *gin.Context) {
	sv, ok := bindSignedVoucher(c)
	if !ok {
		return
	}

	response.OK(c, dto.VerifyResponse{Valid: h.voucherSvc.Verify(sv)})
}

// Validate handles POST /api/v1/vouchers/validate.
func (h *VoucherHandler) Validate(c *gin.Context) {
	sv, ok := bindSignedVoucher(c)
	if !ok {
		return
	}

	if err := h.voucherSvc.ValidateForMint(c.Request.Context(), sv); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ValidateResponse{
		VoucherID:     sv.Voucher.VoucherID,
		ReservationID: sv.Voucher.ReservationID.String(),
		Eligible:      true,
	})
}

// ConfirmMint handles POST /api/v1/reservations/:id/mint-confirmation.
// The body carries the ledger's pending-transaction response for the mint.
func (h *VoucherHandler) ConfirmMint(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	resID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid reservation id"))
		return
	}

	var req dto.MintConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := ledger.ParseMintReceipt(req.TxID, req.Pending)
	if err != nil {
		h.log.Warn().Err(err).
			Str("reservation_id", resID.String()).
			Str("tx_id", req.TxID).
			Msg("ledger response refused")
		response.Error(c, apperror.ErrLedgerResponse(err))
		return
	}

	if err := h.voucherSvc.ConfirmMint(c.Request.Context(), resID, userID, req.VoucherID, receipt); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.MintConfirmationResponse{
		ReservationID:  resID.String(),
		Status:         string(domain.ReservationStatusClaimed),
		TxID:           receipt.TxID,
		ConfirmedRound: receipt.ConfirmedRound,
		AssetIndex:     receipt.AssetIndex,
	})
}

func bindSignedVoucher(c *gin.Context) (*domain.SignedVoucher, bool) {
	var req dto.SignedVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return nil, false
	}
	sv, err := req.ToSignedVoucher()
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return nil, false
	}
	return sv, true
}
