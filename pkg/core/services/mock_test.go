package services

import (
	"context"
	"fmt"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/internal/config"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/db"
)

// mockStore is an in-memory db.Database for service tests.
type mockStore struct {
	records []db.Assignment

	getErr      error
	insertErr   error
	deleteErr   error
	approveErr  error
	truncateErr error

	// failGets makes the first N GetAssignments calls fail, to exercise
	// the retry path.
	failGets int

	getCalls      int
	insertCalls   int
	deleteCalls   int
	approveCalls  int
	truncateCalls int
}

func (m *mockStore) GetAssignments(ctx context.Context) ([]db.Assignment, error) {
	m.getCalls++
	if m.failGets > 0 {
		m.failGets--
		return nil, fmt.Errorf("transient store failure")
	}
	if m.getErr != nil {
		return nil, m.getErr
	}
	out := make([]db.Assignment, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *mockStore) InsertAssignments(ctx context.Context, assignments []db.Assignment) error {
	m.insertCalls++
	if m.insertErr != nil {
		return m.insertErr
	}
	m.records = append(m.records, assignments...)
	return nil
}

func (m *mockStore) DeleteAssignmentsByEmail(ctx context.Context, email string) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	surviving := m.records[:0]
	for _, r := range m.records {
		if r.Email != email {
			surviving = append(surviving, r)
		}
	}
	m.records = surviving
	return nil
}

func (m *mockStore) SetApproved(ctx context.Context, id string) error {
	m.approveCalls++
	if m.approveErr != nil {
		return m.approveErr
	}
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i].Approved = true
			return nil
		}
	}
	return fmt.Errorf("no assignment with id %s", id)
}

func (m *mockStore) TruncateAssignments(ctx context.Context) error {
	m.truncateCalls++
	if m.truncateErr != nil {
		return m.truncateErr
	}
	m.records = nil
	return nil
}

// testConfig returns a config with single-attempt store calls so failure
// tests don't sit out retry backoffs.
func testConfig() *config.Config {
	return &config.Config{
		StoreBackend:        "sheets",
		DatabaseSheetID:     "sheet-test",
		AdminSecret:         "pub-secret",
		IdentityDomain:      "uchicago.edu",
		StoreRetries:        1,
		StoreTimeoutSeconds: 5,
	}
}
