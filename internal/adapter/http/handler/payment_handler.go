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

// PaymentHandler handles money movements: pay-ins, pay-outs, transfers
// and refunds.
type PaymentHandler struct {
	payInSvc    ports.PayInSyncService
	payOutSvc   ports.PayOutSyncService
	transferSvc ports.TransferSyncService
	refundSvc   ports.RefundSyncService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(
	payInSvc ports.PayInSyncService,
	payOutSvc ports.PayOutSyncService,
	transferSvc ports.TransferSyncService,
	refundSvc ports.RefundSyncService,
) *PaymentHandler {
	return &PaymentHandler{
		payInSvc:    payInSvc,
		payOutSvc:   payOutSvc,
		transferSvc: transferSvc,
		refundSvc:   refundSvc,
	}
}

// RegisterPayIn handles POST /api/v1/payins.
func (h *PaymentHandler) RegisterPayIn(c *gin.Context) {
	var req dto.RegisterPayInRequest
	if !bind(c, &req) {
		return
	}
	debited, fees, err := funds(req.DebitedFunds, req.Fees)
	if err != nil {
		response.Error(c, err)
		return
	}

	now := time.Now().UTC()
	payIn := &domain.PayIn{
		ID:                  uuid.New(),
		UserID:              mustUUID(req.UserID),
		WalletID:            mustUUID(req.WalletID),
		Kind:                domain.PaymentKind(req.PaymentType),
		DebitedFunds:        debited,
		Fees:                fees,
		CardID:              optionalUUID(req.CardID),
		SecureModeReturnURL: req.SecureModeReturnURL,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := h.payInSvc.Register(c.Request.Context(), payIn); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payIn)
}

// CreatePayIn handles POST /api/v1/payins/:id/create.
func (h *PaymentHandler) CreatePayIn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	payIn, err := h.payInSvc.Create(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payIn)
}

// GetPayIn handles GET /api/v1/payins/:id and reconciles the outcome.
func (h *PaymentHandler) GetPayIn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	payIn, err := h.payInSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, payIn)
}

// RegisterPayOut handles POST /api/v1/payouts.
func (h *PaymentHandler) RegisterPayOut(c *gin.Context) {
	var req dto.RegisterPayOutRequest
	if !bind(c, &req) {
		return
	}
	debited, fees, err := funds(req.DebitedFunds, req.Fees)
	if err != nil {
		response.Error(c, err)
		return
	}

	now := time.Now().UTC()
	payOut := &domain.PayOut{
		ID:            uuid.New(),
		UserID:        mustUUID(req.UserID),
		WalletID:      mustUUID(req.WalletID),
		BankAccountID: mustUUID(req.BankAccountID),
		DebitedFunds:  debited,
		Fees:          fees,
		BankWireRef:   req.BankWireRef,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := h.payOutSvc.Register(c.Request.Context(), payOut); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payOut)
}

// CreatePayOut handles POST /api/v1/payouts/:id/create.
func (h *PaymentHandler) CreatePayOut(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	payOut, err := h.payOutSvc.Create(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payOut)
}

// RegisterTransfer handles POST /api/v1/transfers.
func (h *PaymentHandler) RegisterTransfer(c *gin.Context) {
	var req dto.RegisterTransferRequest
	if !bind(c, &req) {
		return
	}
	debited, fees, err := funds(req.DebitedFunds, req.Fees)
	if err != nil {
		response.Error(c, err)
		return
	}

	now := time.Now().UTC()
	transfer := &domain.Transfer{
		ID:               uuid.New(),
		DebitedWalletID:  mustUUID(req.DebitedWalletID),
		CreditedWalletID: mustUUID(req.CreditedWalletID),
		DebitedFunds:     debited,
		Fees:             fees,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := h.transferSvc.Register(c.Request.Context(), transfer); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, transfer)
}

// CreateTransfer handles POST /api/v1/transfers/:id/create.
func (h *PaymentHandler) CreateTransfer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	transfer, err := h.transferSvc.Create(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, transfer)
}

// RegisterRefund handles POST /api/v1/refunds.
func (h *PaymentHandler) RegisterRefund(c *gin.Context) {
	var req dto.RegisterRefundRequest
	if !bind(c, &req) {
		return
	}

	now := time.Now().UTC()
	refund := &domain.Refund{
		ID:        uuid.New(),
		UserID:    mustUUID(req.UserID),
		PayInID:   mustUUID(req.PayInID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.refundSvc.Register(c.Request.Context(), refund); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, refund)
}

// CreateRefund handles POST /api/v1/refunds/:id/create.
func (h *PaymentHandler) CreateRefund(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	refund, err := h.refundSvc.Create(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, refund)
}
