package domain

import "private-payroll-gateway/pkg/apperror"

// The invariant checks below are pure and synchronous. The orchestrator runs
// them immediately before building any spending payload: record state may have
// changed across any suspension point, so a validation pass from earlier in
// the same interaction is never trusted.

// ValidateFunding enforces the exact-match funding rule. The program cannot
// split or make change for a note, so the funding credit must equal the payout
// to the microcredit.
func ValidateFunding(contributor *ContributorRecord, credit *CreditRecord) error {
	if credit.Amount != contributor.Payout {
		return apperror.ErrAmountMismatch(contributor.Payout, credit.Amount)
	}
	return nil
}

// ValidateBudget enforces the budget bound for a new obligation. Equality with
// the remaining budget passes.
func ValidateBudget(payroll *PayrollRecord, requestedPayout uint64) error {
	remaining := payroll.RemainingBudget()
	if requestedPayout > remaining {
		return apperror.ErrBudgetExceeded(remaining, requestedPayout)
	}
	return nil
}

// ValidateFreshness rejects a record already observed consumed by a finalized
// or ledger-rejected transaction.
func ValidateFreshness(id string, consumed map[string]bool) error {
	if consumed[id] {
		return apperror.ErrStaleRecord(id)
	}
	return nil
}
