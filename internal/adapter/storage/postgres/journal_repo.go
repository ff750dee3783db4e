package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"private-payroll-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JournalRepo implements ports.JournalRepository. The journal is append-mostly
// operational history: one row per submission, updated once with the terminal
// outcome.
type JournalRepo struct {
	pool Pool
}

// NewJournalRepo creates a new JournalRepo.
func NewJournalRepo(pool Pool) *JournalRepo {
	return &JournalRepo{pool: pool}
}

// Create inserts a new journal entry in the SUBMITTED state.
func (r *JournalRepo) Create(ctx context.Context, entry *domain.JournalEntry) error {
	query := `INSERT INTO payroll_journal (id, operation, program_id, transaction_id, state, raw_status,
		attempts, consumed_ids, created_at, finalized_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.Operation, entry.ProgramID, entry.TransactionID,
		entry.State, entry.RawStatus, entry.Attempts, entry.ConsumedIDs,
		entry.CreatedAt, entry.FinalizedAt,
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// UpdateOutcome records the terminal outcome of a tracked transaction.
func (r *JournalRepo) UpdateOutcome(ctx context.Context, id uuid.UUID, outcome domain.TrackOutcome, finalizedAt time.Time) error {
	query := `UPDATE payroll_journal SET state = $1, raw_status = $2, attempts = $3, finalized_at = $4 WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, outcome.State, outcome.RawStatus, outcome.Attempts, finalizedAt, id)
	if err != nil {
		return fmt.Errorf("update journal outcome: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry not found: %s", id)
	}
	return nil
}

// GetByTransactionID fetches the entry for a submitted transaction, or nil
// when this client never journaled it.
func (r *JournalRepo) GetByTransactionID(ctx context.Context, txID string) (*domain.JournalEntry, error) {
	query := `SELECT id, operation, program_id, transaction_id, state, raw_status, attempts, consumed_ids,
		created_at, finalized_at
		FROM payroll_journal WHERE transaction_id = $1`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, txID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get journal entry: %w", err)
	}
	return entry, nil
}

// ListRecent fetches the most recent entries, newest first.
func (r *JournalRepo) ListRecent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, operation, program_id, transaction_id, state, raw_status, attempts, consumed_ids,
		created_at, finalized_at
		FROM payroll_journal ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := row.Scan(
		&entry.ID, &entry.Operation, &entry.ProgramID, &entry.TransactionID,
		&entry.State, &entry.RawStatus, &entry.Attempts, &entry.ConsumedIDs,
		&entry.CreatedAt, &entry.FinalizedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
