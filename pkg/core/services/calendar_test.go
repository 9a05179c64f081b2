package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/db"
)

func TestBuildCalendar_JoinsNamesInLedgerOrder(t *testing.T) {
	records := []db.Assignment{
		pendingRecord("rec-1", "Ankit Dixit", "ankit@uchicago.edu", "Friday", "3:45 PM – 8:30 PM", 2),
		pendingRecord("rec-2", "Maya Patel", "maya@uchicago.edu", "Friday", "3:45 PM – 8:30 PM", 2),
		pendingRecord("rec-3", "Sam Okafor", "sam@uchicago.edu", "Friday", "3:45 PM – 8:30 PM", 2),
	}

	cal := BuildCalendar(records, false)
	require.NotNil(t, cal)

	assert.Equal(t, "Ankit Dixit, Maya Patel, Sam Okafor", cal.Cell("Friday", "3:45 PM – 8:30 PM"))
}

func TestBuildCalendar_ApprovedOnlyFiltersPending(t *testing.T) {
	approved := pendingRecord("rec-1", "Ankit Dixit", "ankit@uchicago.edu", "Monday", "3:45 PM – 8:00 PM", 2)
	approved.Approved = true
	records := []db.Assignment{
		approved,
		pendingRecord("rec-2", "Maya Patel", "maya@uchicago.edu", "Monday", "3:45 PM – 8:00 PM", 2),
	}

	cal := BuildCalendar(records, true)
	require.NotNil(t, cal)

	assert.Equal(t, "Ankit Dixit", cal.Cell("Monday", "3:45 PM – 8:00 PM"))
	assert.Equal(t, 1, cal.Records)
	assert.Equal(t, 1, cal.People)
}

func TestBuildCalendar_NilWhenNothingMatches(t *testing.T) {
	assert.Nil(t, BuildCalendar(nil, false))

	// All pending, approved-only view.
	records := []db.Assignment{
		pendingRecord("rec-1", "Ankit Dixit", "ankit@uchicago.edu", "Monday", "3:45 PM – 8:00 PM", 2),
	}
	assert.Nil(t, BuildCalendar(records, true))
}

func TestBuildCalendar_SummaryCounts(t *testing.T) {
	records := []db.Assignment{
		pendingRecord("rec-1", "Ankit Dixit", "ankit@uchicago.edu", "Monday", "3:45 PM – 8:00 PM", 2),
		pendingRecord("rec-2", "Ankit Dixit", "ankit@uchicago.edu", "Tuesday", "3:45 PM – 8:00 PM", 2),
		pendingRecord("rec-3", "Maya Patel", "maya@uchicago.edu", "Monday", "8:00 PM – 12:15 AM", 2),
	}

	cal := BuildCalendar(records, false)
	require.NotNil(t, cal)

	assert.Equal(t, 2, cal.People)
	assert.Equal(t, 3, cal.Records)
	assert.Equal(t, 2, cal.Days)
}

func TestListCalendar_EmptyLedgerIsNotAnError(t *testing.T) {
	store := &mockStore{}

	cal, err := ListCalendar(context.Background(), store, zap.NewNop(), testConfig(), false)
	require.NoError(t, err)
	assert.Nil(t, cal)
}

func TestWriteScheduleCSV(t *testing.T) {
	approved := pendingRecord("rec-1", "Ankit Dixit", "ankit@uchicago.edu", "Monday", "3:45 PM – 8:00 PM", 2)
	approved.Approved = true
	records := []db.Assignment{
		approved,
		pendingRecord("rec-2", "Maya Patel", "maya@uchicago.edu", "Friday", "8:30 PM – 1:15 AM", 2),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteScheduleCSV(&buf, records, false))

	want := "Day,Shift,Name,Email,Approved\n" +
		"Monday,3:45 PM – 8:00 PM,Ankit Dixit,ankit@uchicago.edu,Yes\n" +
		"Friday,8:30 PM – 1:15 AM,Maya Patel,maya@uchicago.edu,No\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteScheduleCSV_ApprovedOnly(t *testing.T) {
	records := []db.Assignment{
		pendingRecord("rec-1", "Maya Patel", "maya@uchicago.edu", "Friday", "8:30 PM – 1:15 AM", 2),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteScheduleCSV(&buf, records, true))

	assert.Equal(t, "Day,Shift,Name,Email,Approved\n", buf.String(), "header only when nothing is approved")
}

func TestFormatCalendarTable(t *testing.T) {
	records := []db.Assignment{
		pendingRecord("rec-1", "Ankit Dixit", "ankit@uchicago.edu", "Friday", "3:45 PM – 8:30 PM", 2),
	}

	out := FormatCalendarTable(BuildCalendar(records, false))

	assert.Contains(t, out, "Friday")
	assert.Contains(t, out, "1. 3:45 PM – 8:30 PM: Ankit Dixit")
	assert.Contains(t, out, "2. 8:30 PM – 1:15 AM: -")
	assert.NotContains(t, out, "Monday", "days without records are omitted")
}

func TestMyShifts(t *testing.T) {
	store := &mockStore{records: []db.Assignment{
		pendingRecord("rec-1", "Ankit Dixit", "ankit@uchicago.edu", "Monday", "3:45 PM – 8:00 PM", 2),
		pendingRecord("rec-2", "Maya Patel", "maya@uchicago.edu", "Friday", "8:30 PM – 1:15 AM", 2),
		pendingRecord("rec-3", "Ankit Dixit", "ankit@uchicago.edu", "Saturday", "8:00 PM – 12:15 AM", 2),
	}}

	mine, err := MyShifts(context.Background(), store, zap.NewNop(), testConfig(), "ankit@uchicago.edu")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Monday", mine[0].Day)
	assert.Equal(t, "Saturday", mine[1].Day)

	// Unknown identities get an empty list, not an error.
	none, err := MyShifts(context.Background(), store, zap.NewNop(), testConfig(), "nobody@uchicago.edu")
	require.NoError(t, err)
	assert.Empty(t, none)
}
