package model

// Slot is a single assignable shift: a day of the week paired with one of
// that day's time ranges.
type Slot struct {
	Day   string
	Shift string
}

// Days lists the pub's operating days in week order.
// The pub is closed on Sundays.
var Days = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// Catalog maps each operating day to its two shift time ranges.
// Friday runs later than the other nights, so its ranges differ.
// These strings are shared with the spreadsheet and must not be reformatted.
var Catalog = map[string][]string{
	"Monday": {
		"3:45 PM – 8:00 PM",
		"8:00 PM – 12:15 AM",
	},
	"Tuesday": {
		"3:45 PM – 8:00 PM",
		"8:00 PM – 12:15 AM",
	},
	"Wednesday": {
		"3:45 PM – 8:00 PM",
		"8:00 PM – 12:15 AM",
	},
	"Thursday": {
		"3:45 PM – 8:00 PM",
		"8:00 PM – 12:15 AM",
	},
	"Friday": {
		"3:45 PM – 8:30 PM",
		"8:30 PM – 1:15 AM",
	},
	"Saturday": {
		"3:45 PM – 8:00 PM",
		"8:00 PM – 12:15 AM",
	},
}

// TshirtSizes lists the accepted t-shirt sizes for new attendants.
var TshirtSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// ShiftsFor returns the shift time ranges for a day, or false if the day
// is not an operating day.
func ShiftsFor(day string) ([]string, bool) {
	shifts, ok := Catalog[day]
	return shifts, ok
}

// ValidSlot reports whether the slot exists in the weekly catalog.
func ValidSlot(s Slot) bool {
	shifts, ok := Catalog[s.Day]
	if !ok {
		return false
	}
	for _, shift := range shifts {
		if shift == s.Shift {
			return true
		}
	}
	return false
}

// ValidTshirtSize reports whether the size is one of the accepted sizes.
func ValidTshirtSize(size string) bool {
	for _, s := range TshirtSizes {
		if s == size {
			return true
		}
	}
	return false
}
