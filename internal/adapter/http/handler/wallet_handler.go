package handler

import (
	"time"

	"mangopay-sync/internal/adapter/http/dto"
	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletSyncService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletSyncService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Register handles POST /api/v1/wallets.
func (h *WalletHandler) Register(c *gin.Context) {
	var req dto.RegisterWalletRequest
	if !bind(c, &req) {
		return
	}

	now := time.Now().UTC()
	wallet := &domain.Wallet{
		ID:          uuid.New(),
		UserID:      mustUUID(req.UserID),
		Currency:    req.Currency,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.walletSvc.Register(c.Request.Context(), wallet); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, wallet)
}

// Create handles POST /api/v1/wallets/:id/create.
func (h *WalletHandler) Create(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	wallet, err := h.walletSvc.Create(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, wallet)
}

// GetBalance handles GET /api/v1/wallets/:id/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	balance, err := h.walletSvc.Balance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.BalanceResponse{WalletID: id.String()}
	if balance != nil {
		value := balance.Value.StringFixed(2)
		resp.Balance = &value
		resp.Currency = balance.Currency
	}
	response.OK(c, resp)
}
