package ports

import (
	"context"

	"private-payroll-gateway/internal/core/domain"
)

// RawRecord is an untyped wallet-reported record. Its shape varies by backend:
// structured fields, a `data` submap, a plaintext string, or any mix of them.
type RawRecord map[string]any

// OperationPayload binds a program function call: ordered inputs plus the fee
// policy. The wire format of submission itself is the adapter's concern.
type OperationPayload struct {
	ProgramID  string           `json:"program_id"`
	Function   domain.Operation `json:"function"`
	Inputs     []string         `json:"inputs"`
	Fee        uint64           `json:"fee"` // microcredits
	PrivateFee bool             `json:"private_fee"`
}

// WalletAdapter is the external capability the core drives the ledger
// through. All calls are suspension points: client-held record state may go
// stale across any of them.
type WalletAdapter interface {
	// Connected reports whether an active wallet session exists.
	Connected(ctx context.Context) bool

	// Address returns the current account address.
	Address(ctx context.Context) (string, error)

	// Submit sends an operation payload and returns a transaction identifier.
	Submit(ctx context.Context, payload OperationPayload) (string, error)

	// TransactionStatus returns the free-form status of a submitted
	// transaction. Terminal classification is the caller's job.
	TransactionStatus(ctx context.Context, txID string) (string, error)

	// Records bulk-fetches the records the wallet holds for a program.
	// Return order is not guaranteed.
	Records(ctx context.Context, programID string, includePlaintext bool) ([]RawRecord, error)
}
