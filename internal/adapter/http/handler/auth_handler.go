package handler

import (
	"crypto/subtle"
	"net/http"

	"private-payroll-gateway/internal/adapter/http/dto"
	"private-payroll-gateway/internal/core/ports"
	"private-payroll-gateway/pkg/apperror"
	"private-payroll-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler exchanges the configured operator key for a session JWT.
type AuthHandler struct {
	tokenSvc     ports.TokenService
	wallet       ports.WalletAdapter
	operatorName string
	operatorKey  string
	log          zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokenSvc ports.TokenService, wallet ports.WalletAdapter, operatorName, operatorKey string, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		tokenSvc:     tokenSvc,
		wallet:       wallet,
		operatorName: operatorName,
		operatorKey:  operatorKey,
		log:          log,
	}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	nameOK := subtle.ConstantTimeCompare([]byte(req.Operator), []byte(h.operatorName)) == 1
	keyOK := subtle.ConstantTimeCompare([]byte(req.OperatorKey), []byte(h.operatorKey)) == 1
	if !nameOK || !keyOK {
		response.Error(c, apperror.ErrInvalidOperatorKey())
		return
	}

	// The session address is informational; a wallet outage must not block
	// login.
	address, err := h.wallet.Address(c.Request.Context())
	if err != nil {
		h.log.Warn().Err(err).Msg("wallet address unavailable at login")
		address = ""
	}

	token, expiry, err := h.tokenSvc.Generate(req.Operator, address)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:   token,
		Address: address,
		Expiry:  expiry.Unix(),
	})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
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
