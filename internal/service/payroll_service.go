package service

import (
	"context"
	"fmt"
	"time"

	"private-payroll-gateway/internal/core/domain"
	"private-payroll-gateway/internal/core/ports"
	"private-payroll-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PayrollConfig carries the ledger policy knobs the orchestrator submits
// under. Fee is in microcredits.
type PayrollConfig struct {
	ProgramID       string
	Fee             uint64
	PrivateFee      bool
	PollMaxAttempts int
	PollInterval    time.Duration
	ConsumedTTL     time.Duration
}

// PayrollSvc implements ports.PayrollService. Every operation follows the same
// pipeline: connection check, record re-resolution against a fresh fetch,
// invariant validation, payload submission, tracking to a terminal state, and
// a reconciliation snapshot. Records are addressed by id throughout and only
// resolved to payloads at the last moment, because client-held record state
// can go stale across any wallet call.
type PayrollSvc struct {
	wallet   ports.WalletAdapter
	records  ports.RecordService
	tracker  ports.TransactionTracker
	journal  ports.JournalRepository
	consumed ports.ConsumedRegistry
	cfg      PayrollConfig
	log      zerolog.Logger
}

// NewPayrollService wires the orchestrator.
func NewPayrollService(
	wallet ports.WalletAdapter,
	records ports.RecordService,
	tracker ports.TransactionTracker,
	journal ports.JournalRepository,
	consumed ports.ConsumedRegistry,
	cfg PayrollConfig,
	log zerolog.Logger,
) *PayrollSvc {
	return &PayrollSvc{
		wallet:   wallet,
		records:  records,
		tracker:  tracker,
		journal:  journal,
		consumed: consumed,
		cfg:      cfg,
		log:      log,
	}
}

// InitPayroll creates a payroll funded by one credit record. The credit's
// amount must equal the requested budget exactly: the program cannot make
// change for a note.
func (s *PayrollSvc) InitPayroll(ctx context.Context, req ports.InitPayrollRequest) (*ports.SubmitResult, error) {
	if !s.wallet.Connected(ctx) {
		return nil, apperror.ErrNotConnected()
	}

	credit, err := s.resolveCredit(ctx, req.CreditID)
	if err != nil {
		return nil, err
	}
	if err := s.checkFreshness(ctx, credit.ID); err != nil {
		return nil, err
	}
	if credit.Amount != req.Budget {
		return nil, apperror.ErrAmountMismatch(req.Budget, credit.Amount)
	}

	inputs := []string{credit.Input(), u64(req.Budget)}
	return s.submitAndTrack(ctx, domain.OpInitPayroll, inputs, []string{credit.ID})
}

// AddContributor commits a payout obligation against a payroll. The payout
// must fit the payroll's remaining budget; equality passes.
func (s *PayrollSvc) AddContributor(ctx context.Context, req ports.AddContributorRequest) (*ports.SubmitResult, error) {
	if !s.wallet.Connected(ctx) {
		return nil, apperror.ErrNotConnected()
	}
	if !domain.IsAddress(req.ContributorAddress) {
		return nil, apperror.Validation(fmt.Sprintf("contributor address %q is not a valid account address", req.ContributorAddress))
	}

	payroll, err := s.resolvePayroll(ctx, req.PayrollID)
	if err != nil {
		return nil, err
	}
	if err := s.checkFreshness(ctx, payroll.ID); err != nil {
		return nil, err
	}
	if err := domain.ValidateBudget(payroll, req.Payout); err != nil {
		return nil, err
	}

	inputs := []string{payroll.Input(), req.ContributorAddress, u64(req.Payout)}
	return s.submitAndTrack(ctx, domain.OpAddContributor, inputs, []string{payroll.ID})
}

// PayContributor settles one obligation with an exactly-matching funding
// credit. The obligation must belong to the payroll and be unpaid.
func (s *PayrollSvc) PayContributor(ctx context.Context, req ports.PayContributorRequest) (*ports.SubmitResult, error) {
	if !s.wallet.Connected(ctx) {
		return nil, apperror.ErrNotConnected()
	}

	payroll, err := s.resolvePayroll(ctx, req.PayrollID)
	if err != nil {
		return nil, err
	}
	contributor, err := s.resolveContributor(ctx, req.ContributorID)
	if err != nil {
		return nil, err
	}
	credit, err := s.resolveCredit(ctx, req.FundingCreditID)
	if err != nil {
		return nil, err
	}
	if err := s.checkFreshness(ctx, payroll.ID, contributor.ID, credit.ID); err != nil {
		return nil, err
	}

	if contributor.Paid {
		return nil, apperror.ErrAlreadyPaid(contributor.ID)
	}
	if !contributor.BelongsTo(payroll) {
		return nil, apperror.Validation(fmt.Sprintf("contributor record %s does not belong to payroll %s", contributor.ID, payroll.ID))
	}
	if err := domain.ValidateFunding(contributor, credit); err != nil {
		return nil, err
	}

	inputs := []string{payroll.Input(), contributor.Input(), credit.Input()}
	return s.submitAndTrack(ctx, domain.OpPayContributor, inputs, []string{payroll.ID, contributor.ID, credit.ID})
}

// DiscloseSpent publishes the payroll's spent amount on-ledger.
func (s *PayrollSvc) DiscloseSpent(ctx context.Context, req ports.DiscloseSpentRequest) (*ports.SubmitResult, error) {
	if !s.wallet.Connected(ctx) {
		return nil, apperror.ErrNotConnected()
	}

	payroll, err := s.resolvePayroll(ctx, req.PayrollID)
	if err != nil {
		return nil, err
	}
	if err := s.checkFreshness(ctx, payroll.ID); err != nil {
		return nil, err
	}

	return s.submitAndTrack(ctx, domain.OpDiscloseSpent, []string{payroll.Input()}, []string{payroll.ID})
}

// submitAndTrack runs the shared tail of every operation: submit, journal,
// poll to a terminal state, mark consumed inputs, refresh. Validation never
// reaches here, so every call that returns is followed by a reconciliation
// snapshot regardless of outcome: an apparently failed transaction may still
// have consumed inputs on-ledger.
func (s *PayrollSvc) submitAndTrack(ctx context.Context, op domain.Operation, inputs, consumedIDs []string) (*ports.SubmitResult, error) {
	payload := ports.OperationPayload{
		ProgramID:  s.cfg.ProgramID,
		Function:   op,
		Inputs:     inputs,
		Fee:        s.cfg.Fee,
		PrivateFee: s.cfg.PrivateFee,
	}

	txID, err := s.wallet.Submit(ctx, payload)
	if err != nil {
		s.log.Error().Err(err).Str("operation", string(op)).Msg("submission failed")
		return nil, apperror.ErrSubmissionFailed(err)
	}
	s.log.Info().Str("operation", string(op)).Str("tx_id", txID).Msg("transaction submitted")

	entry := &domain.JournalEntry{
		ID:            uuid.New(),
		Operation:     op,
		ProgramID:     s.cfg.ProgramID,
		TransactionID: txID,
		State:         domain.TxStateSubmitted,
		ConsumedIDs:   consumedIDs,
		CreatedAt:     time.Now().UTC(),
	}
	// The journal is operational history, never a gate: a write failure is
	// logged and the operation proceeds.
	if err := s.journal.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("tx_id", txID).Msg("journal write failed")
	}

	outcome, err := s.tracker.Track(ctx, txID, s.cfg.PollMaxAttempts, s.cfg.PollInterval)
	if err != nil {
		s.journalOutcome(ctx, entry.ID, outcome)
		return nil, err
	}
	s.journalOutcome(ctx, entry.ID, outcome)

	if outcome.Finalized() {
		if err := s.consumed.Mark(ctx, consumedIDs, s.cfg.ConsumedTTL); err != nil {
			s.log.Error().Err(err).Str("tx_id", txID).Msg("consumed registry update failed")
		}
	}

	s.log.Info().
		Str("operation", string(op)).
		Str("tx_id", txID).
		Str("state", string(outcome.State)).
		Str("raw_status", outcome.RawStatus).
		Int("attempts", outcome.Attempts).
		Msg("transaction reached terminal outcome")

	return &ports.SubmitResult{
		TransactionID: txID,
		Outcome:       outcome,
		Records:       s.records.Snapshot(ctx),
	}, nil
}

func (s *PayrollSvc) journalOutcome(ctx context.Context, id uuid.UUID, outcome domain.TrackOutcome) {
	if err := s.journal.UpdateOutcome(ctx, id, outcome, time.Now().UTC()); err != nil {
		s.log.Error().Err(err).Str("journal_id", id.String()).Msg("journal outcome update failed")
	}
}

// checkFreshness rejects ids already observed consumed. A registry outage is
// degraded to a logged pass: the real double-spend guard is the ledger itself.
func (s *PayrollSvc) checkFreshness(ctx context.Context, ids ...string) error {
	consumed, err := s.consumed.Consumed(ctx, ids)
	if err != nil {
		s.log.Warn().Err(err).Msg("consumed registry unavailable, skipping freshness check")
		return nil
	}
	for _, id := range ids {
		if err := domain.ValidateFreshness(id, consumed); err != nil {
			return err
		}
	}
	return nil
}

func (s *PayrollSvc) resolveCredit(ctx context.Context, id string) (*domain.CreditRecord, error) {
	for _, credit := range s.records.Credits(ctx) {
		if credit.ID == id {
			return &credit, nil
		}
	}
	return nil, apperror.ErrRecordNotFound("credit", id)
}

func (s *PayrollSvc) resolvePayroll(ctx context.Context, id string) (*domain.PayrollRecord, error) {
	for _, payroll := range s.records.Payrolls(ctx) {
		if payroll.ID == id {
			return &payroll, nil
		}
	}
	return nil, apperror.ErrRecordNotFound("payroll", id)
}

func (s *PayrollSvc) resolveContributor(ctx context.Context, id string) (*domain.ContributorRecord, error) {
	for _, contributor := range s.records.Contributors(ctx) {
		if contributor.ID == id {
			return &contributor, nil
		}
	}
	return nil, apperror.ErrRecordNotFound("contributor", id)
}

// u64 renders an amount in the ledger's typed-literal syntax.
func u64(v uint64) string {
	return fmt.Sprintf("%du64", v)
}
