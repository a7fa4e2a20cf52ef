package handler

import (
	"time"

	"mangopay-sync/internal/adapter/http/dto"
	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles processor user endpoints.
type UserHandler struct {
	userSvc ports.UserSyncService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userSvc ports.UserSyncService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register handles POST /api/v1/users.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !bind(c, &req) {
		return
	}

	user := toUser(req)
	if err := h.userSvc.Register(c.Request.Context(), user); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// Create handles POST /api/v1/users/:id/create.
func (h *UserHandler) Create(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.userSvc.Create(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// Update handles POST /api/v1/users/:id/update.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.userSvc.Update(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "updated": true})
}

// Authentication handles GET /api/v1/users/:id/authentication.
func (h *UserHandler) Authentication(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	report, err := h.userSvc.Authentication(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

func toUser(req dto.RegisterUserRequest) *domain.User {
	account := domain.Account{ID: mustUUID(req.AccountID)}

	var user *domain.User
	if req.Type == string(domain.UserKindLegal) {
		user = domain.NewLegalUser(account, domain.LegalDetails{
			LegalPersonType:     domain.LegalPersonType(req.LegalPersonType),
			BusinessName:        req.BusinessName,
			BusinessEmail:       req.BusinessEmail,
			HeadquartersAddress: req.HeadquartersAddress,
		})
	} else {
		user = domain.NewNaturalUser(account, domain.NaturalDetails{
			Occupation:  req.Occupation,
			IncomeRange: req.IncomeRange,
		})
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Nationality = req.Nationality
	user.CountryOfResidence = req.CountryOfResidence
	user.Address = req.Address
	if req.Birthday != nil {
		// Format already checked by the datetime binding tag.
		if b, err := time.Parse("2006-01-02", *req.Birthday); err == nil {
			user.Birthday = &b
		}
	}
	return user
}
