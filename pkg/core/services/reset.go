package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/internal/config"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/utils"
)

// ResetStore defines the store operation a period reset needs.
type ResetStore interface {
	TruncateAssignments(ctx context.Context) error
}

// ResetResult reports the outcome of a period reset.
type ResetResult struct {
	// NextPeriodStart is computed from the config period rule when one is
	// set; nil otherwise.
	NextPeriodStart *time.Time
}

// ResetPeriod clears every record, starting a fresh scheduling period.
// The store schema survives, so submissions work immediately afterwards.
// Irreversible: there is no undo and no archival here. Export the
// schedule first if the old period matters.
func ResetPeriod(ctx context.Context, store ResetStore, logger *zap.Logger, cfg *config.Config) (*ResetResult, error) {
	logger.Info("Resetting scheduling period")

	err := utils.Retry(ctx, logger, cfg.StoreRetries, storeRetryDelay, func() error {
		return store.TruncateAssignments(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset period: %w", err)
	}

	result := &ResetResult{}

	if cfg.PeriodRule != "" {
		rule, err := rrule.StrToRRule(cfg.PeriodRule)
		if err != nil {
			// Config validation checks the rule at load time, so this only
			// trips when the config changed underneath us.
			return result, fmt.Errorf("invalid period rule: %w", err)
		}
		rule.DTStart(time.Now())
		next := rule.After(time.Now(), false)
		if !next.IsZero() {
			result.NextPeriodStart = &next
			logger.Info("Next period start", zap.Time("start", next))
		}
	}

	logger.Info("Period reset complete")
	return result, nil
}
