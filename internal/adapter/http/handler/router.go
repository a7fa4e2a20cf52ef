package handler

import (
	"mangopay-sync/config"
	"mangopay-sync/internal/adapter/http/middleware"
	redisStore "mangopay-sync/internal/adapter/storage/redis"
	"mangopay-sync/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	UserSvc        ports.UserSyncService
	DocumentSvc    ports.DocumentSyncService
	BankAccountSvc ports.BankAccountSyncService
	WalletSvc      ports.WalletSyncService
	PayInSvc       ports.PayInSyncService
	PayOutSvc      ports.PayOutSyncService
	TransferSvc    ports.TransferSyncService
	RefundSvc      ports.RefundSyncService
	CardSvc        ports.CardSyncService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimits     config.RateLimitConfig
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService  // nil = audit logging disabled
	Metrics        prometheus.Gatherer // nil = /metrics not exposed
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	rules := middleware.RateLimitRules(deps.RateLimits)
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil || !deps.RateLimits.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rules[group], deps.Logger)
	}
	write := rl(middleware.GroupRemoteWrite)
	read := rl(middleware.GroupRemoteRead)
	local := rl(middleware.GroupLocal)

	// Every ops route requires an operator token.
	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))

	userHandler := NewUserHandler(deps.UserSvc)
	documentHandler := NewDocumentHandler(deps.DocumentSvc)
	users := v1.Group("/users")
	{
		users.POST("", local, userHandler.Register)
		users.POST("/:id/create", write, userHandler.Create)
		users.POST("/:id/update", write, userHandler.Update)
		users.GET("/:id/authentication", local, userHandler.Authentication)
		users.POST("/:id/documents", local, documentHandler.Register)
	}

	documents := v1.Group("/documents")
	{
		documents.GET("/:id", read, documentHandler.Get)
		documents.POST("/:id/create", write, documentHandler.Create)
		documents.POST("/:id/ask-validation", write, documentHandler.AskForValidation)
		documents.POST("/:id/pages", write, documentHandler.UploadPage)
		documents.GET("/:id/pages", local, documentHandler.ListPages)
	}

	bankHandler := NewBankAccountHandler(deps.BankAccountSvc)
	bankAccounts := v1.Group("/bank-accounts")
	{
		bankAccounts.POST("", local, bankHandler.Register)
		bankAccounts.POST("/:id/create", write, bankHandler.Create)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/wallets")
	{
		wallets.POST("", local, walletHandler.Register)
		wallets.POST("/:id/create", write, walletHandler.Create)
		wallets.GET("/:id/balance", read, walletHandler.GetBalance)
	}

	paymentHandler := NewPaymentHandler(deps.PayInSvc, deps.PayOutSvc, deps.TransferSvc, deps.RefundSvc)
	payIns := v1.Group("/payins")
	{
		payIns.POST("", local, paymentHandler.RegisterPayIn)
		payIns.POST("/:id/create", write, paymentHandler.CreatePayIn)
		payIns.GET("/:id", read, paymentHandler.GetPayIn)
	}
	payOuts := v1.Group("/payouts")
	{
		payOuts.POST("", local, paymentHandler.RegisterPayOut)
		payOuts.POST("/:id/create", write, paymentHandler.CreatePayOut)
	}
	transfers := v1.Group("/transfers")
	{
		transfers.POST("", local, paymentHandler.RegisterTransfer)
		transfers.POST("/:id/create", write, paymentHandler.CreateTransfer)
	}
	refunds := v1.Group("/refunds")
	{
		refunds.POST("", local, paymentHandler.RegisterRefund)
		refunds.POST("/:id/create", write, paymentHandler.CreateRefund)
	}

	cardHandler := NewCardHandler(deps.CardSvc)
	registrations := v1.Group("/card-registrations")
	{
		registrations.POST("", local, cardHandler.SaveRegistration)
		registrations.POST("/:id/create", write, cardHandler.CreateRegistration)
		registrations.GET("/:id/preregistration", read, cardHandler.PreregistrationData)
		registrations.PUT("/:id/card", write, cardHandler.SaveCardID)
	}
	v1.GET("/cards/:id", read, cardHandler.RefreshCard)

	return r
}
