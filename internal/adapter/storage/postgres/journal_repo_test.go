package postgres

import (
	"context"
	"testing"
	"time"

	"private-payroll-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry() *domain.JournalEntry {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.JournalEntry{
		ID:            uuid.New(),
		Operation:     domain.OpInitPayroll,
		ProgramID:     "payrollsystem.aleo",
		TransactionID: "at1tx",
		State:         domain.TxStateSubmitted,
		ConsumedIDs:   []string{"c1"},
		CreatedAt:     now,
	}
}

func journalColumns() []string {
	return []string{"id", "operation", "program_id", "transaction_id", "state", "raw_status",
		"attempts", "consumed_ids", "created_at", "finalized_at"}
}

func journalRow(e *domain.JournalEntry) *pgxmock.Rows {
	return pgxmock.NewRows(journalColumns()).AddRow(
		e.ID, e.Operation, e.ProgramID, e.TransactionID,
		e.State, e.RawStatus, e.Attempts, e.ConsumedIDs,
		e.CreatedAt, e.FinalizedAt,
	)
}

func TestJournalRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJournalRepo(mock)
	entry := newTestEntry()

	mock.ExpectExec("INSERT INTO payroll_journal").
		WithArgs(
			entry.ID, entry.Operation, entry.ProgramID, entry.TransactionID,
			entry.State, entry.RawStatus, entry.Attempts, entry.ConsumedIDs,
			entry.CreatedAt, entry.FinalizedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), entry)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalRepo_UpdateOutcome(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJournalRepo(mock)
	id := uuid.New()
	outcome := domain.TrackOutcome{State: domain.TxStateFinalized, RawStatus: "Accepted", Attempts: 3}
	finalizedAt := time.Now().UTC()

	mock.ExpectExec("UPDATE payroll_journal").
		WithArgs(outcome.State, outcome.RawStatus, outcome.Attempts, finalizedAt, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateOutcome(context.Background(), id, outcome, finalizedAt)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalRepo_UpdateOutcome_MissingEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJournalRepo(mock)
	id := uuid.New()
	outcome := domain.TrackOutcome{State: domain.TxStateRejected, RawStatus: "Failed", Attempts: 1}
	finalizedAt := time.Now().UTC()

	mock.ExpectExec("UPDATE payroll_journal").
		WithArgs(outcome.State, outcome.RawStatus, outcome.Attempts, finalizedAt, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateOutcome(context.Background(), id, outcome, finalizedAt)

	assert.Error(t, err)
}

func TestJournalRepo_GetByTransactionID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJournalRepo(mock)
	entry := newTestEntry()

	mock.ExpectQuery("SELECT (.+) FROM payroll_journal WHERE transaction_id").
		WithArgs(entry.TransactionID).
		WillReturnRows(journalRow(entry))

	got, err := repo.GetByTransactionID(context.Background(), entry.TransactionID)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, entry.Operation, got.Operation)
	assert.Equal(t, entry.ConsumedIDs, got.ConsumedIDs)
}

func TestJournalRepo_GetByTransactionID_NotFoundIsNil(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJournalRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM payroll_journal WHERE transaction_id").
		WithArgs("at1unknown").
		WillReturnRows(pgxmock.NewRows(journalColumns()))

	got, err := repo.GetByTransactionID(context.Background(), "at1unknown")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestJournalRepo_ListRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJournalRepo(mock)
	first := newTestEntry()
	second := newTestEntry()
	second.Operation = domain.OpPayContributor

	rows := journalRow(first).AddRow(
		second.ID, second.Operation, second.ProgramID, second.TransactionID,
		second.State, second.RawStatus, second.Attempts, second.ConsumedIDs,
		second.CreatedAt, second.FinalizedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM payroll_journal ORDER BY created_at DESC").
		WithArgs(10).
		WillReturnRows(rows)

	entries, err := repo.ListRecent(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.OpPayContributor, entries[1].Operation)
}

func TestJournalRepo_ListRecent_DefaultLimit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJournalRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM payroll_journal ORDER BY created_at DESC").
		WithArgs(50).
		WillReturnRows(pgxmock.NewRows(journalColumns()))

	entries, err := repo.ListRecent(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, entries)
}
