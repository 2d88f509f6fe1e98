package handler

import (
	"custodial-voucher/internal/adapter/http/dto"
	"custodial-voucher/internal/adapter/http/middleware"
	"custodial-voucher/internal/core/ports"
	"custodial-voucher/pkg/apperror"
	"custodial-voucher/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles custodial wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Provision handles POST /api/v1/wallets. Repeated calls return the same wallet.
func (h *WalletHandler) Provision(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	wallet, err := h.walletSvc.Provision(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromWallet(wallet))
}

// Me handles GET /api/v1/wallets/me.
func (h *WalletHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	address, err := h.walletSvc.Address(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletResponse{
		UserID:  userID.String(),
		Address: address,
	})
}
