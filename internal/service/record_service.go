package service

import (
	"context"

	"private-payroll-gateway/internal/core/domain"
	"private-payroll-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// CreditsProgramID is the program credit records belong to, as opposed to the
// payroll program that owns the other three kinds.
const CreditsProgramID = "credits.aleo"

// RecordSvc implements ports.RecordService on top of the wallet adapter and
// the normalizer. It never throws: a failed fetch yields an empty category and
// a logged error, so callers building UIs or snapshots always get a usable
// result.
type RecordSvc struct {
	wallet     ports.WalletAdapter
	normalizer ports.RecordNormalizer
	programID  string
	log        zerolog.Logger
}

// NewRecordService creates a RecordSvc fetching payroll records from
// programID and credit records from the credits program.
func NewRecordService(wallet ports.WalletAdapter, normalizer ports.RecordNormalizer, programID string, log zerolog.Logger) *RecordSvc {
	return &RecordSvc{wallet: wallet, normalizer: normalizer, programID: programID, log: log}
}

// Credits returns the spendable credit records the wallet holds. Unusable
// entries (zero amount or no content to submit) are dropped.
func (s *RecordSvc) Credits(ctx context.Context) []domain.CreditRecord {
	credits, err := s.fetchCredits(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("program", CreditsProgramID).Msg("credit record fetch failed")
		return []domain.CreditRecord{}
	}
	return credits
}

// Payrolls returns the unspent payroll records the wallet holds.
func (s *RecordSvc) Payrolls(ctx context.Context) []domain.PayrollRecord {
	payrolls, _, _, err := s.fetchProgramRecords(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("program", s.programID).Msg("payroll record fetch failed")
		return []domain.PayrollRecord{}
	}
	return payrolls
}

// Contributors returns the unspent contributor records the wallet holds.
func (s *RecordSvc) Contributors(ctx context.Context) []domain.ContributorRecord {
	_, contributors, _, err := s.fetchProgramRecords(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("program", s.programID).Msg("contributor record fetch failed")
		return []domain.ContributorRecord{}
	}
	return contributors
}

// Receipts returns the payment receipt records the wallet holds.
func (s *RecordSvc) Receipts(ctx context.Context) []domain.PaymentReceiptRecord {
	_, _, receipts, err := s.fetchProgramRecords(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("program", s.programID).Msg("receipt record fetch failed")
		return []domain.PaymentReceiptRecord{}
	}
	return receipts
}

// Snapshot fetches every category without short-circuiting: a failure in one
// category is noted in Errors and the rest still populate. The two underlying
// wallet fetches are shared across categories.
func (s *RecordSvc) Snapshot(ctx context.Context) *domain.RecordSet {
	set := &domain.RecordSet{
		Credits:      []domain.CreditRecord{},
		Payrolls:     []domain.PayrollRecord{},
		Contributors: []domain.ContributorRecord{},
		Receipts:     []domain.PaymentReceiptRecord{},
		Errors:       map[domain.RecordKind]string{},
	}

	credits, err := s.fetchCredits(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("program", CreditsProgramID).Msg("credit record fetch failed")
		set.Errors[domain.KindCredit] = err.Error()
	} else {
		set.Credits = credits
	}

	payrolls, contributors, receipts, err := s.fetchProgramRecords(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("program", s.programID).Msg("payroll program record fetch failed")
		set.Errors[domain.KindPayroll] = err.Error()
		set.Errors[domain.KindContributor] = err.Error()
		set.Errors[domain.KindReceipt] = err.Error()
		return set
	}
	set.Payrolls = payrolls
	set.Contributors = contributors
	set.Receipts = receipts
	return set
}

func (s *RecordSvc) fetchCredits(ctx context.Context) ([]domain.CreditRecord, error) {
	addr := s.address(ctx)
	raws, err := s.wallet.Records(ctx, CreditsProgramID, true)
	if err != nil {
		return nil, err
	}
	credits := make([]domain.CreditRecord, 0, len(raws))
	for _, raw := range raws {
		credit, ok := s.normalizer.Credit(raw, addr)
		if !ok {
			continue
		}
		if !credit.Usable() {
			s.log.Debug().Str("record_id", credit.ID).Msg("skipping unusable credit record")
			continue
		}
		credits = append(credits, *credit)
	}
	return credits, nil
}

func (s *RecordSvc) fetchProgramRecords(ctx context.Context) ([]domain.PayrollRecord, []domain.ContributorRecord, []domain.PaymentReceiptRecord, error) {
	addr := s.address(ctx)
	raws, err := s.wallet.Records(ctx, s.programID, true)
	if err != nil {
		return nil, nil, nil, err
	}

	payrolls := []domain.PayrollRecord{}
	contributors := []domain.ContributorRecord{}
	receipts := []domain.PaymentReceiptRecord{}
	for _, raw := range raws {
		if payroll, ok := s.normalizer.Payroll(raw, addr); ok {
			payrolls = append(payrolls, *payroll)
			continue
		}
		if contributor, ok := s.normalizer.Contributor(raw, addr); ok {
			contributors = append(contributors, *contributor)
			continue
		}
		if receipt, ok := s.normalizer.Receipt(raw, addr); ok {
			receipts = append(receipts, *receipt)
		}
	}
	return payrolls, contributors, receipts, nil
}

// address resolves the requesting address for owner fallback. Failure is not
// fatal: normalization proceeds with an empty fallback.
func (s *RecordSvc) address(ctx context.Context) string {
	addr, err := s.wallet.Address(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("wallet address unavailable, normalizing without owner fallback")
		return ""
	}
	return addr
}
