package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/internal/config"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/model"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/db"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/utils"
)

// Bounds on a single submission batch and on the declared weekly maximum.
const (
	MinSlotsPerSubmission = 1
	MaxSlotsPerSubmission = 4

	MinMaxShifts = 1
	MaxMaxShifts = 4
)

var validate = validator.New()

// Submission is one attendant's availability declaration for the period.
type Submission struct {
	Name      string
	Email     string
	Tshirt    string
	MaxShifts int
	Slots     []model.Slot
}

// SubmitResult reports what a submission wrote to the ledger.
type SubmitResult struct {
	Created []db.Assignment
	// Replaced is how many records from the identity's previous submission
	// were removed before writing the new batch.
	Replaced int
}

// SubmitStore defines the store operations a submission needs.
type SubmitStore interface {
	GetAssignments(ctx context.Context) ([]db.Assignment, error)
	DeleteAssignmentsByEmail(ctx context.Context, email string) error
	InsertAssignments(ctx context.Context, assignments []db.Assignment) error
}

// SubmitAvailability validates a submission and writes one Pending record
// per selected slot. Resubmitting replaces the identity's previous batch in
// full, so one identity never owns two live batches. Validation failures
// write nothing.
func SubmitAvailability(ctx context.Context, store SubmitStore, logger *zap.Logger, cfg *config.Config, sub Submission) (*SubmitResult, error) {
	logger.Debug("Submitting availability",
		zap.String("email", sub.Email),
		zap.Int("slots", len(sub.Slots)),
		zap.Int("max_shifts", sub.MaxShifts))

	if err := validateSubmission(sub, cfg.IdentityDomain); err != nil {
		return nil, err
	}

	// Re-read the ledger so the replace decision is made against current
	// state, not a stale view.
	records, err := readLedger(ctx, store, logger, cfg)
	if err != nil {
		return nil, err
	}

	prior := RecordsForEmail(records, sub.Email)
	if len(prior) > 0 {
		logger.Info("Replacing previous submission",
			zap.String("email", sub.Email),
			zap.Int("prior_records", len(prior)))

		err := utils.Retry(ctx, logger, cfg.StoreRetries, storeRetryDelay, func() error {
			return store.DeleteAssignmentsByEmail(ctx, sub.Email)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to remove previous submission: %w", err)
		}
	}

	batch := make([]db.Assignment, 0, len(sub.Slots))
	for _, slot := range sub.Slots {
		batch = append(batch, db.Assignment{
			ID:        uuid.New().String(),
			Name:      sub.Name,
			Email:     sub.Email,
			Tshirt:    sub.Tshirt,
			Day:       slot.Day,
			Shift:     slot.Shift,
			Approved:  false,
			MaxShifts: sub.MaxShifts,
		})
	}

	err = utils.Retry(ctx, logger, cfg.StoreRetries, storeRetryDelay, func() error {
		return store.InsertAssignments(ctx, batch)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write submission: %w", err)
	}

	logger.Info("Submission recorded",
		zap.String("email", sub.Email),
		zap.Int("records", len(batch)),
		zap.Int("replaced", len(prior)))

	return &SubmitResult{
		Created:  batch,
		Replaced: len(prior),
	}, nil
}

// validateSubmission runs the submission checks in order, stopping at the
// first failure.
func validateSubmission(sub Submission, identityDomain string) error {
	if strings.TrimSpace(sub.Name) == "" {
		return ErrMissingName
	}

	if err := validate.Var(sub.Email, "required,email"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidIdentity, sub.Email)
	}
	if !strings.HasSuffix(sub.Email, "@"+identityDomain) {
		return fmt.Errorf("%w: %q is not on the %s domain", ErrInvalidIdentity, sub.Email, identityDomain)
	}

	if len(sub.Slots) < MinSlotsPerSubmission || len(sub.Slots) > MaxSlotsPerSubmission {
		return fmt.Errorf("%w: got %d", ErrSlotCountOutOfRange, len(sub.Slots))
	}

	seen := make(map[model.Slot]bool, len(sub.Slots))
	for _, slot := range sub.Slots {
		if !model.ValidSlot(slot) {
			return fmt.Errorf("%w: %s %s", ErrInvalidSlot, slot.Day, slot.Shift)
		}
		if seen[slot] {
			return fmt.Errorf("%w: %s %s", ErrDuplicateSlot, slot.Day, slot.Shift)
		}
		seen[slot] = true
	}

	if !model.ValidTshirtSize(sub.Tshirt) {
		return fmt.Errorf("%w: %q", ErrInvalidTshirtSize, sub.Tshirt)
	}

	if sub.MaxShifts < MinMaxShifts || sub.MaxShifts > MaxMaxShifts {
		return fmt.Errorf("%w: got %d", ErrMaxShiftsOutOfRange, sub.MaxShifts)
	}

	return nil
}
