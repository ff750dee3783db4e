package dto

import (
	"private-payroll-gateway/internal/core/domain"
	"private-payroll-gateway/internal/core/ports"
)

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Operator    string `json:"operator" binding:"required,min=1,max=100"`
	OperatorKey string `json:"operator_key" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token   string `json:"token"`
	Address string `json:"address"`
	Expiry  int64  `json:"expiry"` // Unix timestamp
}

// InitPayrollRequest is the request body for creating a payroll.
type InitPayrollRequest struct {
	CreditID string `json:"credit_id" binding:"required,record_id"`
	Budget   uint64 `json:"budget" binding:"required,gt=0"`
}

// AddContributorRequest is the request body for committing a payout
// obligation.
type AddContributorRequest struct {
	PayrollID          string `json:"payroll_id" binding:"required,record_id"`
	ContributorAddress string `json:"contributor_address" binding:"required,aleo_address"`
	Payout             uint64 `json:"payout" binding:"required,gt=0"`
}

// PayContributorRequest is the request body for settling an obligation.
type PayContributorRequest struct {
	PayrollID       string `json:"payroll_id" binding:"required,record_id"`
	ContributorID   string `json:"contributor_id" binding:"required,record_id"`
	FundingCreditID string `json:"funding_credit_id" binding:"required,record_id"`
}

// DiscloseSpentRequest is the request body for publishing spent totals.
type DiscloseSpentRequest struct {
	PayrollID string `json:"payroll_id" binding:"required,record_id"`
}

// OperationResponse is the response body for a completed payroll operation.
type OperationResponse struct {
	TransactionID string            `json:"transaction_id"`
	State         string            `json:"state"`
	RawStatus     string            `json:"raw_status,omitempty"`
	Attempts      int               `json:"attempts"`
	Records       *domain.RecordSet `json:"records,omitempty"`
}

// TransactionStatusResponse is the response body for a status probe.
type TransactionStatusResponse struct {
	TransactionID string               `json:"transaction_id"`
	RawStatus     string               `json:"raw_status"`
	Class         string               `json:"class"`
	Journal       *domain.JournalEntry `json:"journal,omitempty"`
}

// ToOperationResponse converts an orchestrator result to its DTO.
func ToOperationResponse(result *ports.SubmitResult) OperationResponse {
	return OperationResponse{
		TransactionID: result.TransactionID,
		State:         string(result.Outcome.State),
		RawStatus:     result.Outcome.RawStatus,
		Attempts:      result.Outcome.Attempts,
		Records:       result.Records,
	}
}
