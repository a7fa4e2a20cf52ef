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

// BankAccountHandler handles payout bank account endpoints.
type BankAccountHandler struct {
	bankSvc ports.BankAccountSyncService
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(bankSvc ports.BankAccountSyncService) *BankAccountHandler {
	return &BankAccountHandler{bankSvc: bankSvc}
}

// Register handles POST /api/v1/bank-accounts.
func (h *BankAccountHandler) Register(c *gin.Context) {
	var req dto.RegisterBankAccountRequest
	if !bind(c, &req) {
		return
	}

	now := time.Now().UTC()
	acct := &domain.BankAccount{
		ID:                 uuid.New(),
		UserID:             mustUUID(req.UserID),
		Address:            req.Address,
		AccountType:        domain.BankAccountType(req.AccountType),
		IBAN:               req.IBAN,
		BIC:                req.BIC,
		Country:            req.Country,
		AccountNumber:      req.AccountNumber,
		ABA:                req.ABA,
		DepositAccountType: domain.DepositAccountType(req.DepositAccountType),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := h.bankSvc.Register(c.Request.Context(), acct); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, maskAccount(acct))
}

// Create handles POST /api/v1/bank-accounts/:id/create.
func (h *BankAccountHandler) Create(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	acct, err := h.bankSvc.Create(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, maskAccount(acct))
}

// maskAccount hides all but the last four characters of account numbers.
func maskAccount(acct *domain.BankAccount) *domain.BankAccount {
	masked := *acct
	masked.IBAN = mask(acct.IBAN)
	masked.AccountNumber = mask(acct.AccountNumber)
	return &masked
}

func mask(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	if len(v) <= 4 {
		return &v
	}
	out := make([]byte, len(v))
	for i := range out {
		out[i] = '*'
	}
	copy(out[len(v)-4:], v[len(v)-4:])
	masked := string(out)
	return &masked
}
