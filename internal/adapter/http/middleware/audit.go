package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
}

// auditRoutes maps "METHOD route-pattern" to the recorded action.
var auditRoutes = map[string]auditRoute{
	"POST /api/v1/users":                         {domain.AuditActionRegister, "user"},
	"POST /api/v1/users/:id/create":              {domain.AuditActionCreate, "user"},
	"POST /api/v1/users/:id/update":              {domain.AuditActionUpdate, "user"},
	"POST /api/v1/users/:id/documents":           {domain.AuditActionRegister, "document"},
	"POST /api/v1/documents/:id/create":          {domain.AuditActionCreate, "document"},
	"POST /api/v1/documents/:id/ask-validation":  {domain.AuditActionAskValidation, "document"},
	"POST /api/v1/documents/:id/pages":           {domain.AuditActionUploadPage, "document"},
	"POST /api/v1/bank-accounts":                 {domain.AuditActionRegister, "bank_account"},
	"POST /api/v1/bank-accounts/:id/create":      {domain.AuditActionCreate, "bank_account"},
	"POST /api/v1/wallets":                       {domain.AuditActionRegister, "wallet"},
	"POST /api/v1/wallets/:id/create":            {domain.AuditActionCreate, "wallet"},
	"POST /api/v1/payins":                        {domain.AuditActionRegister, "payin"},
	"POST /api/v1/payins/:id/create":             {domain.AuditActionCreate, "payin"},
	"POST /api/v1/payouts":                       {domain.AuditActionRegister, "payout"},
	"POST /api/v1/payouts/:id/create":            {domain.AuditActionCreate, "payout"},
	"POST /api/v1/transfers":                     {domain.AuditActionRegister, "transfer"},
	"POST /api/v1/transfers/:id/create":          {domain.AuditActionCreate, "transfer"},
	"POST /api/v1/refunds":                       {domain.AuditActionRegister, "refund"},
	"POST /api/v1/refunds/:id/create":            {domain.AuditActionCreate, "refund"},
	"POST /api/v1/card-registrations":            {domain.AuditActionSaveRegistration, "card_registration"},
	"POST /api/v1/card-registrations/:id/create": {domain.AuditActionCreate, "card_registration"},
	"PUT /api/v1/card-registrations/:id/card":    {domain.AuditActionSaveCard, "card_registration"},
}

// AuditLog records successful write operations after the handler ran.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType := mapRouteToAction(c.Request.Method, c.FullPath())
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Operator:     Operator(c),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapRouteToAction(method, route string) (domain.AuditAction, string) {
	r, ok := auditRoutes[method+" "+route]
	if !ok {
		return "", ""
	}
	return r.action, r.resourceType
}
