package handler

import (
	"net/http"

	"private-payroll-gateway/internal/adapter/http/dto"
	"private-payroll-gateway/internal/core/domain"
	"private-payroll-gateway/internal/core/ports"
	"private-payroll-gateway/pkg/apperror"
	"private-payroll-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// PayrollHandler handles the payroll operation endpoints. Every endpoint
// blocks until the submitted transaction reaches a terminal state, then
// returns the outcome plus the post-operation record snapshot.
type PayrollHandler struct {
	payrollSvc ports.PayrollService
}

// NewPayrollHandler creates a new PayrollHandler.
func NewPayrollHandler(payrollSvc ports.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollSvc: payrollSvc}
}

// InitPayroll handles POST /api/v1/payrolls.
func (h *PayrollHandler) InitPayroll(c *gin.Context) {
	var req dto.InitPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.payrollSvc.InitPayroll(c.Request.Context(), ports.InitPayrollRequest{
		CreditID: req.CreditID,
		Budget:   req.Budget,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	respondOutcome(c, result)
}

// AddContributor handles POST /api/v1/payrolls/contributors.
func (h *PayrollHandler) AddContributor(c *gin.Context) {
	var req dto.AddContributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.payrollSvc.AddContributor(c.Request.Context(), ports.AddContributorRequest{
		PayrollID:          req.PayrollID,
		ContributorAddress: req.ContributorAddress,
		Payout:             req.Payout,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	respondOutcome(c, result)
}

// PayContributor handles POST /api/v1/payrolls/payments.
func (h *PayrollHandler) PayContributor(c *gin.Context) {
	var req dto.PayContributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.payrollSvc.PayContributor(c.Request.Context(), ports.PayContributorRequest{
		PayrollID:       req.PayrollID,
		ContributorID:   req.ContributorID,
		FundingCreditID: req.FundingCreditID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	respondOutcome(c, result)
}

// DiscloseSpent handles POST /api/v1/payrolls/disclose.
func (h *PayrollHandler) DiscloseSpent(c *gin.Context) {
	var req dto.DiscloseSpentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.payrollSvc.DiscloseSpent(c.Request.Context(), ports.DiscloseSpentRequest{
		PayrollID: req.PayrollID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	respondOutcome(c, result)
}

// respondOutcome maps the terminal state to an HTTP status. Rejection and
// timeout still carry the full payload: the caller needs the refreshed record
// set to reconcile either way.
func respondOutcome(c *gin.Context, result *ports.SubmitResult) {
	body := dto.ToOperationResponse(result)
	switch result.Outcome.State {
	case domain.TxStateFinalized:
		response.OK(c, body)
	case domain.TxStateTimedOut:
		response.Accepted(c, body)
	default:
		response.WithStatus(c, http.StatusUnprocessableEntity, body)
	}
}
