package db

import "context"

// Database defines the interface for all assignment store operations.
// Both the SheetsSQL-backed db.DB and postgres.DB implement this interface.
//
// The store is the single source of truth: callers must re-read it before
// any capacity-sensitive write decision instead of trusting an earlier read.
type Database interface {
	// GetAssignments returns every assignment record in the current period,
	// in store insertion order.
	GetAssignments(ctx context.Context) ([]Assignment, error)

	// InsertAssignments appends a submission batch, one record per slot.
	InsertAssignments(ctx context.Context, assignments []Assignment) error

	// DeleteAssignmentsByEmail removes all records owned by the given
	// identity. Used for replace-on-resubmit.
	DeleteAssignmentsByEmail(ctx context.Context, email string) error

	// SetApproved marks the record with the given ID as approved.
	// There is no reverse transition.
	SetApproved(ctx context.Context, id string) error

	// TruncateAssignments deletes every record while preserving the table
	// schema, so a fresh period can start without re-provisioning.
	TruncateAssignments(ctx context.Context) error
}
