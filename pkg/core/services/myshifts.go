package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/internal/config"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/db"
)

// MyShifts returns the records owned by one identity, in ledger order.
// An identity with no records gets an empty slice, not an error.
func MyShifts(ctx context.Context, store LedgerStore, logger *zap.Logger, cfg *config.Config, email string) ([]db.Assignment, error) {
	logger.Debug("Looking up shifts", zap.String("email", email))

	records, err := readLedger(ctx, store, logger, cfg)
	if err != nil {
		return nil, err
	}

	return RecordsForEmail(records, email), nil
}
