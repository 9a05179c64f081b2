package postgres

import (
	"context"
	"fmt"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/db"
)

// GetAssignments retrieves all assignment records in insertion order.
func (d *DB) GetAssignments(ctx context.Context) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, email, tshirt, day, shift, approved, max_shifts
		FROM assignment
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Tshirt, &a.Day, &a.Shift, &a.Approved, &a.MaxShifts); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// InsertAssignments inserts a submission batch in a single transaction, so
// a mid-batch failure leaves no partial rows behind.
func (d *DB) InsertAssignments(ctx context.Context, assignments []db.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (id, name, email, tshirt, day, shift, approved, max_shifts)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, a.ID, a.Name, a.Email, a.Tshirt, a.Day, a.Shift, a.Approved, a.MaxShifts)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteAssignmentsByEmail removes every record owned by the given identity.
func (d *DB) DeleteAssignmentsByEmail(ctx context.Context, email string) error {
	if _, err := d.pool.Exec(ctx, `DELETE FROM assignment WHERE email = $1`, email); err != nil {
		return fmt.Errorf("failed to delete assignments for %s: %w", email, err)
	}
	return nil
}

// SetApproved marks the record with the given ID as approved.
func (d *DB) SetApproved(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `UPDATE assignment SET approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to approve assignment %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no assignment with id %s", id)
	}
	return nil
}

// TruncateAssignments deletes every record. The table schema survives, so
// the next period's submissions need no re-provisioning.
func (d *DB) TruncateAssignments(ctx context.Context) error {
	if _, err := d.pool.Exec(ctx, `TRUNCATE assignment`); err != nil {
		return fmt.Errorf("failed to truncate assignments: %w", err)
	}
	return nil
}
