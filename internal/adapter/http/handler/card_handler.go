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

// CardHandler handles card registration and tokenization endpoints.
type CardHandler struct {
	cardSvc ports.CardSyncService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardSvc ports.CardSyncService) *CardHandler {
	return &CardHandler{cardSvc: cardSvc}
}

// SaveRegistration handles POST /api/v1/card-registrations.
func (h *CardHandler) SaveRegistration(c *gin.Context) {
	var req dto.SaveCardRegistrationRequest
	if !bind(c, &req) {
		return
	}

	now := time.Now().UTC()
	reg := &domain.CardRegistration{
		ID:        uuid.New(),
		UserID:    mustUUID(req.UserID),
		CardID:    optionalUUID(req.CardID),
		Currency:  req.Currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.cardSvc.SaveRegistration(c.Request.Context(), reg); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reg)
}

// CreateRegistration handles POST /api/v1/card-registrations/:id/create.
func (h *CardHandler) CreateRegistration(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	reg, err := h.cardSvc.CreateRegistration(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reg)
}

// PreregistrationData handles GET /api/v1/card-registrations/:id/preregistration.
func (h *CardHandler) PreregistrationData(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	data, err := h.cardSvc.PreregistrationData(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

// SaveCardID handles PUT /api/v1/card-registrations/:id/card.
func (h *CardHandler) SaveCardID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SaveCardRequest
	if !bind(c, &req) {
		return
	}

	card, err := h.cardSvc.SaveCardID(c.Request.Context(), id, req.CardID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, card)
}

// RefreshCard handles GET /api/v1/cards/:id.
func (h *CardHandler) RefreshCard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	card, err := h.cardSvc.RefreshCard(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, card)
}
