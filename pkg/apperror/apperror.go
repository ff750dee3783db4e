package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Connectivity (CON) ----

func ErrNotConnected() *AppError {
	return New("CON_001", "Wallet is not connected", http.StatusServiceUnavailable)
}

func ErrSubmissionUnavailable() *AppError {
	return New("CON_002", "Transaction submission capability unavailable", http.StatusServiceUnavailable)
}

func ErrStatusQueryUnavailable() *AppError {
	return New("CON_003", "Transaction status capability unavailable", http.StatusServiceUnavailable)
}

// ---- Validation (VAL) ----
// Validation errors carry the offending values so the caller can correct the
// input. They are raised before any submission attempt: nothing was spent.

func ErrAmountMismatch(required, provided uint64) *AppError {
	return New("VAL_001",
		fmt.Sprintf("Funding credit must match payout exactly: payout is %d microcredits, credit holds %d", required, provided),
		http.StatusUnprocessableEntity)
}

func ErrBudgetExceeded(remaining, requested uint64) *AppError {
	return New("VAL_002",
		fmt.Sprintf("Payout exceeds remaining budget: %d microcredits remaining, %d requested", remaining, requested),
		http.StatusUnprocessableEntity)
}

func ErrStaleRecord(id string) *AppError {
	return New("VAL_003",
		fmt.Sprintf("Record %s was already consumed by an earlier transaction", id),
		http.StatusConflict)
}

func ErrRecordNotFound(kind, id string) *AppError {
	return New("VAL_004", fmt.Sprintf("%s record %s not found in the current wallet set", kind, id), http.StatusNotFound)
}

func ErrAlreadyPaid(id string) *AppError {
	return New("VAL_005", fmt.Sprintf("Contributor record %s is already marked paid", id), http.StatusConflict)
}

func ErrUnusableRecord(id string) *AppError {
	return New("VAL_006", fmt.Sprintf("Record %s has no spendable content", id), http.StatusUnprocessableEntity)
}

// Validation returns a generic VAL_000 input error.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Submission / ledger (SUB) ----

func ErrSubmissionFailed(err error) *AppError {
	return Wrap("SUB_001", "Transaction submission failed", http.StatusBadGateway, err)
}

func ErrTransactionRejected(txID, rawStatus string) *AppError {
	return New("SUB_002",
		fmt.Sprintf("Transaction %s was rejected by the ledger (status: %s)", txID, rawStatus),
		http.StatusBadGateway)
}

func ErrTrackingTimedOut(txID string) *AppError {
	return New("SUB_003",
		fmt.Sprintf("Transaction %s did not reach a terminal state within the polling budget; it may still finalize", txID),
		http.StatusGatewayTimeout)
}

// ---- Authentication (AUTH) ----

func ErrInvalidOperatorKey() *AppError {
	return New("AUTH_001", "Invalid operator key", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}
