package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/model"
)

func validSubmission() Submission {
	return Submission{
		Name:      "Ankit Dixit",
		Email:     "ankit@uchicago.edu",
		Tshirt:    "M",
		MaxShifts: 2,
		Slots: []model.Slot{
			{Day: "Monday", Shift: "3:45 PM – 8:00 PM"},
			{Day: "Friday", Shift: "8:30 PM – 1:15 AM"},
		},
	}
}

func TestSubmitAvailability_CreatesPendingRecords(t *testing.T) {
	store := &mockStore{}
	sub := validSubmission()

	result, err := SubmitAvailability(context.Background(), store, zap.NewNop(), testConfig(), sub)
	require.NoError(t, err)
	require.Len(t, result.Created, 2)
	assert.Equal(t, 0, result.Replaced)

	require.Len(t, store.records, 2)
	for i, r := range store.records {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "Ankit Dixit", r.Name)
		assert.Equal(t, "ankit@uchicago.edu", r.Email)
		assert.Equal(t, "M", r.Tshirt)
		assert.Equal(t, sub.Slots[i].Day, r.Day)
		assert.Equal(t, sub.Slots[i].Shift, r.Shift)
		assert.False(t, r.Approved, "new records must start pending")
		assert.Equal(t, 2, r.MaxShifts, "declared maximum recorded verbatim")
	}

	// Each record gets its own ID.
	assert.NotEqual(t, store.records[0].ID, store.records[1].ID)
}

func TestSubmitAvailability_ValidationWritesNothing(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Submission)
		wantErr error
	}{
		{
			"missing name",
			func(s *Submission) { s.Name = "  " },
			ErrMissingName,
		},
		{
			"malformed email",
			func(s *Submission) { s.Email = "not-an-email" },
			ErrInvalidIdentity,
		},
		{
			"wrong domain",
			func(s *Submission) { s.Email = "ankit@gmail.com" },
			ErrInvalidIdentity,
		},
		{
			"zero slots",
			func(s *Submission) { s.Slots = nil },
			ErrSlotCountOutOfRange,
		},
		{
			"five slots",
			func(s *Submission) {
				s.Slots = []model.Slot{
					{Day: "Monday", Shift: "3:45 PM – 8:00 PM"},
					{Day: "Tuesday", Shift: "3:45 PM – 8:00 PM"},
					{Day: "Wednesday", Shift: "3:45 PM – 8:00 PM"},
					{Day: "Thursday", Shift: "3:45 PM – 8:00 PM"},
					{Day: "Saturday", Shift: "3:45 PM – 8:00 PM"},
				}
			},
			ErrSlotCountOutOfRange,
		},
		{
			"slot outside catalog",
			func(s *Submission) {
				s.Slots = []model.Slot{{Day: "Sunday", Shift: "3:45 PM – 8:00 PM"}}
			},
			ErrInvalidSlot,
		},
		{
			"friday shift on a monday",
			func(s *Submission) {
				s.Slots = []model.Slot{{Day: "Monday", Shift: "8:30 PM – 1:15 AM"}}
			},
			ErrInvalidSlot,
		},
		{
			"same slot twice",
			func(s *Submission) {
				s.Slots = []model.Slot{
					{Day: "Monday", Shift: "3:45 PM – 8:00 PM"},
					{Day: "Monday", Shift: "3:45 PM – 8:00 PM"},
				}
			},
			ErrDuplicateSlot,
		},
		{
			"bad tshirt size",
			func(s *Submission) { s.Tshirt = "XXXL" },
			ErrInvalidTshirtSize,
		},
		{
			"max shifts zero",
			func(s *Submission) { s.MaxShifts = 0 },
			ErrMaxShiftsOutOfRange,
		},
		{
			"max shifts five",
			func(s *Submission) { s.MaxShifts = 5 },
			ErrMaxShiftsOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{}
			sub := validSubmission()
			tt.mutate(&sub)

			_, err := SubmitAvailability(context.Background(), store, zap.NewNop(), testConfig(), sub)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			assert.Zero(t, store.insertCalls, "validation failure must write nothing")
			assert.Zero(t, store.deleteCalls, "validation failure must delete nothing")
			assert.Empty(t, store.records)
		})
	}
}

func TestSubmitAvailability_ResubmitReplacesPriorBatch(t *testing.T) {
	store := &mockStore{}
	ctx := context.Background()
	logger := zap.NewNop()
	cfg := testConfig()

	first := validSubmission()
	_, err := SubmitAvailability(ctx, store, logger, cfg, first)
	require.NoError(t, err)

	second := validSubmission()
	second.Slots = []model.Slot{{Day: "Tuesday", Shift: "8:00 PM – 12:15 AM"}}
	second.MaxShifts = 1

	result, err := SubmitAvailability(ctx, store, logger, cfg, second)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Replaced)
	require.Len(t, result.Created, 1)

	// Only the second batch is live.
	mine := RecordsForEmail(store.records, "ankit@uchicago.edu")
	require.Len(t, mine, 1)
	assert.Equal(t, "Tuesday", mine[0].Day)
	assert.Equal(t, 1, mine[0].MaxShifts)
}

func TestSubmitAvailability_ResubmitLeavesOthersAlone(t *testing.T) {
	store := &mockStore{}
	ctx := context.Background()
	logger := zap.NewNop()
	cfg := testConfig()

	other := validSubmission()
	other.Name = "Maya Patel"
	other.Email = "maya@uchicago.edu"
	_, err := SubmitAvailability(ctx, store, logger, cfg, other)
	require.NoError(t, err)

	mine := validSubmission()
	_, err = SubmitAvailability(ctx, store, logger, cfg, mine)
	require.NoError(t, err)

	resubmit := validSubmission()
	resubmit.Slots = []model.Slot{{Day: "Saturday", Shift: "3:45 PM – 8:00 PM"}}
	_, err = SubmitAvailability(ctx, store, logger, cfg, resubmit)
	require.NoError(t, err)

	assert.Len(t, RecordsForEmail(store.records, "maya@uchicago.edu"), 2)
	assert.Len(t, RecordsForEmail(store.records, "ankit@uchicago.edu"), 1)
}

func TestSubmitAvailability_RetriesTransientReadFailure(t *testing.T) {
	store := &mockStore{failGets: 1}
	cfg := testConfig()
	cfg.StoreRetries = 2

	result, err := SubmitAvailability(context.Background(), store, zap.NewNop(), cfg, validSubmission())
	require.NoError(t, err)
	assert.Len(t, result.Created, 2)
	assert.Equal(t, 2, store.getCalls)
}

func TestSubmitAvailability_StoreUnavailable(t *testing.T) {
	store := &mockStore{failGets: 3}

	_, err := SubmitAvailability(context.Background(), store, zap.NewNop(), testConfig(), validSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read ledger")
	assert.Zero(t, store.insertCalls)
}

func TestSubmitAvailability_ShowsUpInCalendarSlots(t *testing.T) {
	store := &mockStore{}
	ctx := context.Background()
	logger := zap.NewNop()
	cfg := testConfig()

	sub := validSubmission()
	_, err := SubmitAvailability(ctx, store, logger, cfg, sub)
	require.NoError(t, err)

	cal, err := ListCalendar(ctx, store, logger, cfg, false)
	require.NoError(t, err)
	require.NotNil(t, cal)

	assert.Equal(t, "Ankit Dixit", cal.Cell("Monday", "3:45 PM – 8:00 PM"))
	assert.Equal(t, "Ankit Dixit", cal.Cell("Friday", "8:30 PM – 1:15 AM"))

	// And in no other cell.
	for day, shifts := range model.Catalog {
		for _, shift := range shifts {
			if (day == "Monday" && shift == "3:45 PM – 8:00 PM") ||
				(day == "Friday" && shift == "8:30 PM – 1:15 AM") {
				continue
			}
			assert.Empty(t, cal.Cell(day, shift), "unexpected name in %s %s", day, shift)
		}
	}
}
