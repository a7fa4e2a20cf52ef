package handler

import (
	"mangopay-sync/internal/adapter/http/dto"
	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/pkg/response"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles the KYC document workflow.
type DocumentHandler struct {
	docSvc ports.DocumentSyncService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(docSvc ports.DocumentSyncService) *DocumentHandler {
	return &DocumentHandler{docSvc: docSvc}
}

// Register handles POST /api/v1/users/:id/documents.
func (h *DocumentHandler) Register(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.RegisterDocumentRequest
	if !bind(c, &req) {
		return
	}

	doc, err := h.docSvc.Register(c.Request.Context(), userID, domain.DocumentType(req.Type))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc)
}

// Create handles POST /api/v1/documents/:id/create.
func (h *DocumentHandler) Create(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	doc, err := h.docSvc.Create(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc)
}

// Get handles GET /api/v1/documents/:id. The status is refreshed from the
// processor when the document exists remotely.
func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	doc, err := h.docSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, doc)
}

// AskForValidation handles POST /api/v1/documents/:id/ask-validation.
func (h *DocumentHandler) AskForValidation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	doc, err := h.docSvc.AskForValidation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, doc)
}

// UploadPage handles POST /api/v1/documents/:id/pages.
func (h *DocumentHandler) UploadPage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UploadPageRequest
	if !bind(c, &req) {
		return
	}

	page, err := h.docSvc.UploadPage(c.Request.Context(), id, req.FileURL)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, page)
}

// ListPages handles GET /api/v1/documents/:id/pages.
func (h *DocumentHandler) ListPages(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pages, err := h.docSvc.Pages(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if pages == nil {
		pages = []domain.Page{}
	}
	response.OK(c, pages)
}
