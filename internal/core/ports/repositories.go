package ports

import (
	"context"
	"time"

	"private-payroll-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// JournalRepository persists the submission journal: what this client sent
// and how each transaction ended. Operational history only; never consulted
// for record state.
type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) error
	UpdateOutcome(ctx context.Context, id uuid.UUID, outcome domain.TrackOutcome, finalizedAt time.Time) error
	GetByTransactionID(ctx context.Context, txID string) (*domain.JournalEntry, error)
	ListRecent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}

// ConsumedRegistry remembers record ids observed consumed by terminal
// transactions, feeding the freshness check. Entries are TTL-bounded: a
// consumed id only needs to outlive the client's staleness window, because
// the next refresh drops the record from the fetched set anyway.
type ConsumedRegistry interface {
	// Mark records the ids as consumed.
	Mark(ctx context.Context, ids []string, ttl time.Duration) error
	// Consumed reports, for each queried id, whether it is known consumed.
	Consumed(ctx context.Context, ids []string) (map[string]bool, error)
}
