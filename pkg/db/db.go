package db

import (
	"context"
	"fmt"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/sheetssql"
)

// assignmentTable is the sheet tab backing the ledger, derived from the
// Assignment struct name by sheetssql.
const assignmentTable = "assignment"

// DB provides assignment store operations backed by a Google Sheets
// spreadsheet through the SheetsSQL layer.
type DB struct {
	ssql *sheetssql.DB
}

// NewDB creates a new sheets-backed database instance.
func NewDB(ssql *sheetssql.DB) *DB {
	return &DB{ssql: ssql}
}

// GetAssignments retrieves all assignment records in sheet order.
func (db *DB) GetAssignments(ctx context.Context) ([]Assignment, error) {
	assignments, err := sheetssql.GetTableAs[Assignment](db.ssql, assignmentTable)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	return assignments, nil
}

// InsertAssignments appends a batch of assignment records.
func (db *DB) InsertAssignments(ctx context.Context, assignments []Assignment) error {
	if err := sheetssql.InsertModels(db.ssql, assignments); err != nil {
		return fmt.Errorf("failed to insert assignments: %w", err)
	}
	return nil
}

// DeleteAssignmentsByEmail removes every record owned by the given identity.
func (db *DB) DeleteAssignmentsByEmail(ctx context.Context, email string) error {
	if err := db.ssql.DeleteRowsByKey(assignmentTable, "email", email); err != nil {
		return fmt.Errorf("failed to delete assignments for %s: %w", email, err)
	}
	return nil
}

// SetApproved marks the record with the given ID as approved.
func (db *DB) SetApproved(ctx context.Context, id string) error {
	if err := db.ssql.UpdateCellByKey(assignmentTable, "id", id, "approved", true); err != nil {
		return fmt.Errorf("failed to approve assignment %s: %w", id, err)
	}
	return nil
}

// TruncateAssignments clears all records, keeping the header and type rows
// so the next period's submissions need no re-provisioning.
func (db *DB) TruncateAssignments(ctx context.Context) error {
	if err := db.ssql.TruncateTable(assignmentTable); err != nil {
		return fmt.Errorf("failed to truncate assignments: %w", err)
	}
	return nil
}
