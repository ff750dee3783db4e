package handler

import (
	"private-payroll-gateway/internal/adapter/http/middleware"
	"private-payroll-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PayrollSvc     ports.PayrollService
	RecordSvc      ports.RecordService
	Wallet         ports.WalletAdapter
	Journal        ports.JournalRepository
	TokenSvc       ports.TokenService
	OperatorName   string
	OperatorKey    string
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis + wallet)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.TokenSvc, deps.Wallet, deps.OperatorName, deps.OperatorKey, deps.Logger)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// --- JWT-authenticated routes (operator API) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	payrollHandler := NewPayrollHandler(deps.PayrollSvc)
	payrolls := v1.Group("/payrolls", jwtAuth)
	{
		payrolls.POST("", payrollHandler.InitPayroll)
		payrolls.POST("/contributors", payrollHandler.AddContributor)
		payrolls.POST("/payments", payrollHandler.PayContributor)
		payrolls.POST("/disclose", payrollHandler.DiscloseSpent)
	}

	recordHandler := NewRecordHandler(deps.RecordSvc)
	records := v1.Group("/records", jwtAuth)
	{
		records.GET("", recordHandler.Snapshot)
		records.GET("/credits", recordHandler.Credits)
		records.GET("/payrolls", recordHandler.Payrolls)
		records.GET("/contributors", recordHandler.Contributors)
		records.GET("/receipts", recordHandler.Receipts)
	}

	transactionHandler := NewTransactionHandler(deps.Wallet, deps.Journal)
	transactions := v1.Group("/transactions", jwtAuth)
	{
		transactions.GET("", transactionHandler.List)
		transactions.GET("/:id", transactionHandler.Status)
	}

	return r
}
