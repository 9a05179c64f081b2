package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/internal/config"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/db"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/utils"
)

// ApproveStore defines the store operations an approval pass needs.
type ApproveStore interface {
	GetAssignments(ctx context.Context) ([]db.Assignment, error)
	SetApproved(ctx context.Context, id string) error
}

// SkippedApproval records why one record in an approval batch was not
// approved. Skips are warnings, not failures.
type SkippedApproval struct {
	ID     string
	Email  string
	Reason error
}

// ApproveResult reports the outcome of an approval pass.
type ApproveResult struct {
	Approved []db.Assignment
	Skipped  []SkippedApproval
}

// ErrRecordNotFound is reported in SkippedApproval when an ID matches no
// pending record in the current ledger.
var ErrRecordNotFound = errors.New("no such record in the current period")

// ErrAlreadyApproved is reported in SkippedApproval for records that are
// already approved. Approval is one-way, so this is a no-op, not an error.
var ErrAlreadyApproved = errors.New("record is already approved")

// ApproveAssignments approves the given record IDs, in order, each checked
// against the attendant's running approved count so that a batch granting
// several slots to one person stops at their declared maximum. A capacity
// rejection skips that record and continues with the rest.
//
// The ledger is re-read at the start of the pass to narrow the window for
// concurrent-manager races; the store itself provides no compare-and-swap,
// so the window cannot be closed entirely.
func ApproveAssignments(ctx context.Context, store ApproveStore, logger *zap.Logger, cfg *config.Config, ids []string) (*ApproveResult, error) {
	logger.Debug("Starting approval pass", zap.Int("records", len(ids)))

	records, err := readLedger(ctx, store, logger, cfg)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]db.Assignment, len(records))
	approvedCounts := make(map[string]int)
	for _, r := range records {
		byID[r.ID] = r
		if r.Approved {
			approvedCounts[r.Email]++
		}
	}

	result := &ApproveResult{}

	for _, id := range ids {
		record, ok := byID[id]
		if !ok {
			logger.Warn("Skipping unknown record", zap.String("id", id))
			result.Skipped = append(result.Skipped, SkippedApproval{ID: id, Reason: ErrRecordNotFound})
			continue
		}

		if record.Approved {
			logger.Warn("Skipping already-approved record",
				zap.String("id", id),
				zap.String("email", record.Email))
			result.Skipped = append(result.Skipped, SkippedApproval{ID: id, Email: record.Email, Reason: ErrAlreadyApproved})
			continue
		}

		if approvedCounts[record.Email] >= record.MaxShifts {
			logger.Warn("Skipping record over capacity",
				zap.String("id", id),
				zap.String("email", record.Email),
				zap.Int("approved", approvedCounts[record.Email]),
				zap.Int("max_shifts", record.MaxShifts))
			result.Skipped = append(result.Skipped, SkippedApproval{ID: id, Email: record.Email, Reason: ErrCapacityExceeded})
			continue
		}

		err := utils.Retry(ctx, logger, cfg.StoreRetries, storeRetryDelay, func() error {
			return store.SetApproved(ctx, id)
		})
		if err != nil {
			// A store failure is fatal: the remaining records cannot be
			// approved against known-consistent state.
			return nil, fmt.Errorf("failed to approve record %s: %w", id, err)
		}

		approvedCounts[record.Email]++
		record.Approved = true
		result.Approved = append(result.Approved, record)

		logger.Info("Record approved",
			zap.String("id", id),
			zap.String("email", record.Email),
			zap.Int("approved_count", approvedCounts[record.Email]))
	}

	logger.Debug("Approval pass finished",
		zap.Int("approved", len(result.Approved)),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}
