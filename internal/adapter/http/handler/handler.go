package handler

import (
	"encoding/json"
	"net/http"

	"mangopay-sync/internal/adapter/http/dto"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/pkg/apperror"
	"mangopay-sync/pkg/money"
	"mangopay-sync/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// pathID parses the :id route parameter. It writes the error response
// itself and returns ok=false on failure.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// bind decodes a JSON body, sanitizes it and only then runs the binding
// tags, so padded values are judged after trimming. It writes a
// validation error on failure.
func bind(c *gin.Context, req interface{}) bool {
	if c.Request.Body == nil {
		response.Error(c, apperror.Validation("request body is required"))
		return false
	}
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		response.Error(c, apperror.Validation("invalid JSON body: "+err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	if err := binding.Validator.ValidateStruct(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

// mustUUID parses identifiers already checked by the "uuid" binding tag.
func mustUUID(s string) uuid.UUID {
	return uuid.MustParse(s)
}

func optionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id := uuid.MustParse(*s)
	return &id
}

// funds converts debited funds and optional fees. Fees default to zero in
// the debited currency.
func funds(debited dto.AmountRequest, fees *dto.AmountRequest) (money.Amount, money.Amount, error) {
	d, err := money.New(debited.Value, debited.Currency)
	if err != nil {
		return money.Amount{}, money.Amount{}, apperror.Validation(err.Error())
	}
	if fees == nil {
		return d, money.Zero(d.Currency), nil
	}
	f, err := money.New(fees.Value, fees.Currency)
	if err != nil {
		return money.Amount{}, money.Amount{}, apperror.Validation(err.Error())
	}
	return d, f, nil
}

// HealthCheck handles GET /health and pings every dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
