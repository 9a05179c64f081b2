package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_EveryDayHasTwoShifts(t *testing.T) {
	assert.Len(t, Days, 6)

	for _, day := range Days {
		shifts, ok := ShiftsFor(day)
		require.True(t, ok, "day %s missing from catalog", day)
		assert.Len(t, shifts, 2, "day %s should have exactly two shifts", day)
	}
}

func TestCatalog_FridayRunsLater(t *testing.T) {
	friday, ok := ShiftsFor("Friday")
	require.True(t, ok)
	assert.Equal(t, []string{"3:45 PM – 8:30 PM", "8:30 PM – 1:15 AM"}, friday)

	monday, ok := ShiftsFor("Monday")
	require.True(t, ok)
	assert.Equal(t, []string{"3:45 PM – 8:00 PM", "8:00 PM – 12:15 AM"}, monday)
}

func TestShiftsFor_UnknownDay(t *testing.T) {
	_, ok := ShiftsFor("Sunday")
	assert.False(t, ok, "the pub is closed on Sundays")

	_, ok = ShiftsFor("monday")
	assert.False(t, ok, "day names are case sensitive")
}

func TestValidSlot(t *testing.T) {
	tests := []struct {
		name  string
		slot  Slot
		valid bool
	}{
		{"monday early", Slot{Day: "Monday", Shift: "3:45 PM – 8:00 PM"}, true},
		{"friday late", Slot{Day: "Friday", Shift: "8:30 PM – 1:15 AM"}, true},
		{"friday with weekday times", Slot{Day: "Friday", Shift: "8:00 PM – 12:15 AM"}, false},
		{"monday with friday times", Slot{Day: "Monday", Shift: "8:30 PM – 1:15 AM"}, false},
		{"unknown day", Slot{Day: "Sunday", Shift: "3:45 PM – 8:00 PM"}, false},
		{"empty shift", Slot{Day: "Tuesday"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidSlot(tt.slot))
		})
	}
}

func TestValidTshirtSize(t *testing.T) {
	for _, size := range TshirtSizes {
		assert.True(t, ValidTshirtSize(size))
	}
	assert.False(t, ValidTshirtSize("XXXL"))
	assert.False(t, ValidTshirtSize("m"))
	assert.False(t, ValidTshirtSize(""))
}
