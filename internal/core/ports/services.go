package ports

import (
	"context"
	"time"

	"private-payroll-gateway/internal/core/domain"
)

// RecordNormalizer converts one raw wallet record into a typed entity. Every
// method is a pure function of its inputs (aside from the documented random-id
// fallback) and never fails: absent fields degrade to zero/empty, and the
// second return is false only when the record is excluded outright (spent flag
// or incompatible kind).
type RecordNormalizer interface {
	Credit(raw RawRecord, requestingAddress string) (*domain.CreditRecord, bool)
	Payroll(raw RawRecord, requestingAddress string) (*domain.PayrollRecord, bool)
	Contributor(raw RawRecord, requestingAddress string) (*domain.ContributorRecord, bool)
	Receipt(raw RawRecord, requestingAddress string) (*domain.PaymentReceiptRecord, bool)
}

// TransactionTracker polls a transaction identifier until a terminal state or
// the attempt budget runs out. Exactly one terminal outcome is returned per
// call; no state is shared between calls, so independent transactions may be
// tracked concurrently. The only error is context cancellation.
type TransactionTracker interface {
	Track(ctx context.Context, txID string, maxAttempts int, interval time.Duration) (domain.TrackOutcome, error)
}

// RecordService fetches and normalizes each record category. Fetch failures
// resolve to an empty slice plus a logged error rather than propagating, so
// one failing category never blocks the others.
type RecordService interface {
	Credits(ctx context.Context) []domain.CreditRecord
	Payrolls(ctx context.Context) []domain.PayrollRecord
	Contributors(ctx context.Context) []domain.ContributorRecord
	Receipts(ctx context.Context) []domain.PaymentReceiptRecord

	// Snapshot aggregates one result per category without short-circuiting.
	Snapshot(ctx context.Context) *domain.RecordSet
}

// PayrollService orchestrates the four payroll operations. Each call
// re-resolves its record ids against the latest fetched set, re-validates
// immediately before submission, tracks the transaction to a terminal state,
// and refreshes the record set on ANY terminal outcome. Validation failures
// abort before submission and never trigger a refresh.
type PayrollService interface {
	InitPayroll(ctx context.Context, req InitPayrollRequest) (*SubmitResult, error)
	AddContributor(ctx context.Context, req AddContributorRequest) (*SubmitResult, error)
	PayContributor(ctx context.Context, req PayContributorRequest) (*SubmitResult, error)
	DiscloseSpent(ctx context.Context, req DiscloseSpentRequest) (*SubmitResult, error)
}

// InitPayrollRequest creates a payroll funded by one credit record whose
// amount must equal the budget exactly.
type InitPayrollRequest struct {
	CreditID string
	Budget   uint64
}

// AddContributorRequest commits a payout obligation against a payroll.
type AddContributorRequest struct {
	PayrollID          string
	ContributorAddress string
	Payout             uint64
}

// PayContributorRequest pays one obligation with an exactly-matching credit.
type PayContributorRequest struct {
	PayrollID       string
	ContributorID   string
	FundingCreditID string
}

// DiscloseSpentRequest publishes the spent amount of a payroll.
type DiscloseSpentRequest struct {
	PayrollID string
}

// SubmitResult is the terminal result of one orchestrated operation.
type SubmitResult struct {
	TransactionID string              `json:"transaction_id"`
	Outcome       domain.TrackOutcome `json:"outcome"`
	// Records is the post-operation reconciliation snapshot. Present for every
	// terminal outcome, success or failure, because an apparently failed
	// operation may still have consumed inputs on-ledger.
	Records *domain.RecordSet `json:"records,omitempty"`
}

// TokenService handles operator JWT operations for the API surface.
type TokenService interface {
	Generate(operator, address string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Operator string
	Address  string
}
