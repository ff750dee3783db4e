package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Operation names the program functions this client drives.
type Operation string

const (
	OpInitPayroll    Operation = "init_payroll"
	OpAddContributor Operation = "add_contributor"
	OpPayContributor Operation = "pay_contributor"
	OpDiscloseSpent  Operation = "disclose_spent"
)

// TxState is the lifecycle state of a submitted transaction as this client
// knows it.
type TxState string

const (
	TxStateSubmitted TxState = "SUBMITTED"
	TxStateFinalized TxState = "FINALIZED"
	TxStateRejected  TxState = "REJECTED"
	// TxStateTimedOut is terminal for the tracking loop but unknown on the
	// ledger: the transaction may still finalize later.
	TxStateTimedOut TxState = "TIMED_OUT"
)

// Terminal reports whether tracking has stopped for this state.
func (s TxState) Terminal() bool {
	return s != TxStateSubmitted
}

// Succeeded reports confirmed on-ledger success.
func (s TxState) Succeeded() bool {
	return s == TxStateFinalized
}

// TrackOutcome is the single terminal result of one tracking loop.
type TrackOutcome struct {
	State     TxState `json:"state"`
	RawStatus string  `json:"raw_status"`
	Attempts  int     `json:"attempts"`
}

// Finalized mirrors the wallet-adapter convention: true only on confirmed
// success.
func (o TrackOutcome) Finalized() bool {
	return o.State.Succeeded()
}

// StatusClass buckets a raw wallet status string.
type StatusClass int

const (
	StatusPending StatusClass = iota
	StatusSuccess
	StatusFailure
)

// ClassifyStatus classifies a raw status case-insensitively. Terminal success
// is accepted/finalized, terminal failure is failed/rejected; anything else,
// including proving/broadcasting phases, is still pending. Substring matching
// absorbs backends that report decorated statuses ("Status: Finalized").
func ClassifyStatus(raw string) StatusClass {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "finalized"), strings.Contains(s, "accepted"):
		return StatusSuccess
	case strings.Contains(s, "failed"), strings.Contains(s, "rejected"):
		return StatusFailure
	default:
		return StatusPending
	}
}

// JournalEntry records one submission this client made and how it ended. The
// journal is operational history only; the ledger stays the sole source of
// truth for record state.
type JournalEntry struct {
	ID            uuid.UUID  `json:"id"`
	Operation     Operation  `json:"operation"`
	ProgramID     string     `json:"program_id"`
	TransactionID string     `json:"transaction_id"`
	State         TxState    `json:"state"`
	RawStatus     string     `json:"raw_status,omitempty"`
	Attempts      int        `json:"attempts"`
	ConsumedIDs   []string   `json:"consumed_ids,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	FinalizedAt   *time.Time `json:"finalized_at,omitempty"`
}
