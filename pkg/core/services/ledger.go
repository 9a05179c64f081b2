package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/internal/config"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/db"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/utils"
)

// storeRetryDelay is the initial backoff between store attempts; utils.Retry
// doubles it on each subsequent attempt.
const storeRetryDelay = 500 * time.Millisecond

// LedgerStore defines the read side of the assignment store.
type LedgerStore interface {
	GetAssignments(ctx context.Context) ([]db.Assignment, error)
}

// readLedger fetches the full ledger with bounded retries. Every write
// decision must go through a fresh read; cached ledgers are never trusted.
func readLedger(ctx context.Context, store LedgerStore, logger *zap.Logger, cfg *config.Config) ([]db.Assignment, error) {
	var records []db.Assignment
	err := utils.Retry(ctx, logger, cfg.StoreRetries, storeRetryDelay, func() error {
		var err error
		records, err = store.GetAssignments(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	return records, nil
}

// RecordsForEmail returns the records owned by the given identity, in
// ledger order.
func RecordsForEmail(records []db.Assignment, email string) []db.Assignment {
	var out []db.Assignment
	for _, r := range records {
		if r.Email == email {
			out = append(out, r)
		}
	}
	return out
}

// RecordsForDay returns the records for the given day, in ledger order.
func RecordsForDay(records []db.Assignment, day string) []db.Assignment {
	var out []db.Assignment
	for _, r := range records {
		if r.Day == day {
			out = append(out, r)
		}
	}
	return out
}

// ApprovedCount returns how many of the identity's records are approved.
func ApprovedCount(records []db.Assignment, email string) int {
	count := 0
	for _, r := range records {
		if r.Email == email && r.Approved {
			count++
		}
	}
	return count
}

// ListAssignments returns every record in the current period, for the
// manager's review view. An empty ledger is not an error.
func ListAssignments(ctx context.Context, store LedgerStore, logger *zap.Logger, cfg *config.Config) ([]db.Assignment, error) {
	logger.Debug("Listing all assignments")
	return readLedger(ctx, store, logger, cfg)
}
