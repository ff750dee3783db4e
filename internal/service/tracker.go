package service

import (
	"context"
	"time"

	"private-payroll-gateway/internal/core/domain"
	"private-payroll-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// Default polling policy: ~2 minutes before declaring TimedOut. Tunable via
// config, not a contract.
const (
	DefaultPollMaxAttempts = 60
	DefaultPollInterval    = 2 * time.Second
)

// Tracker implements ports.TransactionTracker. Each Track call owns its whole
// loop and shares nothing, so independent transactions can be tracked
// concurrently.
type Tracker struct {
	wallet ports.WalletAdapter
	log    zerolog.Logger
}

// NewTracker creates a Tracker polling through the given wallet capability.
func NewTracker(wallet ports.WalletAdapter, log zerolog.Logger) *Tracker {
	return &Tracker{wallet: wallet, log: log}
}

// Track polls txID on a fixed interval until a terminal state or the attempt
// budget is exhausted. A transient query error counts as still-pending for
// that attempt. The timer is released on context cancellation; ctx.Err() is
// the only error returned.
func (t *Tracker) Track(ctx context.Context, txID string, maxAttempts int, interval time.Duration) (domain.TrackOutcome, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultPollMaxAttempts
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	var lastStatus string
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status, err := t.wallet.TransactionStatus(ctx, txID)
		if err != nil {
			if ctx.Err() != nil {
				return domain.TrackOutcome{State: domain.TxStateTimedOut, RawStatus: lastStatus, Attempts: attempt}, ctx.Err()
			}
			// Transient query failure: do not short-circuit the loop.
			t.log.Warn().Err(err).Str("tx_id", txID).Int("attempt", attempt).Msg("status query failed, treating as still pending")
		} else {
			lastStatus = status
			switch domain.ClassifyStatus(status) {
			case domain.StatusSuccess:
				t.log.Info().Str("tx_id", txID).Str("status", status).Int("attempts", attempt).Msg("transaction finalized")
				return domain.TrackOutcome{State: domain.TxStateFinalized, RawStatus: status, Attempts: attempt}, nil
			case domain.StatusFailure:
				t.log.Warn().Str("tx_id", txID).Str("status", status).Int("attempts", attempt).Msg("transaction rejected")
				return domain.TrackOutcome{State: domain.TxStateRejected, RawStatus: status, Attempts: attempt}, nil
			}
		}

		if attempt == maxAttempts {
			break
		}
		if err := wait(ctx, interval); err != nil {
			return domain.TrackOutcome{State: domain.TxStateTimedOut, RawStatus: lastStatus, Attempts: attempt}, err
		}
	}

	t.log.Warn().Str("tx_id", txID).Int("attempts", maxAttempts).Msg("polling budget exhausted, transaction may still finalize")
	return domain.TrackOutcome{State: domain.TxStateTimedOut, RawStatus: lastStatus, Attempts: maxAttempts}, nil
}

// wait sleeps for d or until ctx is done, releasing the timer either way.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
