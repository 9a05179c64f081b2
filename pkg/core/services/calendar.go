package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/internal/config"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/model"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/db"
)

// cellSeparator joins the names sharing one calendar cell.
const cellSeparator = ", "

// Calendar is the day-by-shift view of the ledger. Cells holds the joined
// attendant names per (day, shift); slots nobody holds are simply absent.
type Calendar struct {
	Cells map[string]map[string]string

	// Summary counts over the records the calendar was built from.
	People  int
	Records int
	Days    int
}

// Cell returns the joined names for a slot, or "" when nobody holds it.
func (c *Calendar) Cell(day, shift string) string {
	if row, ok := c.Cells[day]; ok {
		return row[shift]
	}
	return ""
}

// BuildCalendar projects ledger records into a day-by-shift grid, joining
// the names in each cell with ", " in ledger order. With approvedOnly set,
// pending records are left out. Returns nil when no record matches, which
// callers present as "no schedule yet" rather than an empty grid.
func BuildCalendar(records []db.Assignment, approvedOnly bool) *Calendar {
	var matching []db.Assignment
	for _, r := range records {
		if approvedOnly && !r.Approved {
			continue
		}
		matching = append(matching, r)
	}

	if len(matching) == 0 {
		return nil
	}

	cells := make(map[string]map[string]string)
	people := make(map[string]bool)
	days := make(map[string]bool)

	for _, r := range matching {
		row, ok := cells[r.Day]
		if !ok {
			row = make(map[string]string)
			cells[r.Day] = row
		}

		if existing, ok := row[r.Shift]; ok {
			row[r.Shift] = existing + cellSeparator + r.Name
		} else {
			row[r.Shift] = r.Name
		}

		people[r.Email] = true
		days[r.Day] = true
	}

	return &Calendar{
		Cells:   cells,
		People:  len(people),
		Records: len(matching),
		Days:    len(days),
	}
}

// ListCalendar reads the ledger and builds its calendar view. A nil
// calendar with a nil error means the period has no matching records yet.
func ListCalendar(ctx context.Context, store LedgerStore, logger *zap.Logger, cfg *config.Config, approvedOnly bool) (*Calendar, error) {
	logger.Debug("Building calendar", zap.Bool("approved_only", approvedOnly))

	records, err := readLedger(ctx, store, logger, cfg)
	if err != nil {
		return nil, err
	}

	cal := BuildCalendar(records, approvedOnly)
	if cal == nil {
		logger.Info("No records match the calendar view")
		return nil, nil
	}

	return cal, nil
}

// WriteScheduleCSV writes the matching ledger records as flat CSV rows, one
// per record, in ledger order.
func WriteScheduleCSV(w io.Writer, records []db.Assignment, approvedOnly bool) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Day", "Shift", "Name", "Email", "Approved"}); err != nil {
		return err
	}

	for _, r := range records {
		if approvedOnly && !r.Approved {
			continue
		}
		approved := "No"
		if r.Approved {
			approved = "Yes"
		}
		if err := cw.Write([]string{r.Day, r.Shift, r.Name, r.Email, approved}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// FormatCalendarTable renders the calendar as fixed-width text with days as
// columns and shift position (early/late) as rows, like the pub's wall
// calendar. Days with no records are omitted.
func FormatCalendarTable(cal *Calendar) string {
	var b strings.Builder

	for _, day := range model.Days {
		row, ok := cal.Cells[day]
		if !ok {
			continue
		}

		b.WriteString(day + "\n")
		shifts, _ := model.ShiftsFor(day)
		for i, shift := range shifts {
			names := row[shift]
			if names == "" {
				names = "-"
			}
			b.WriteString("  " + strconv.Itoa(i+1) + ". " + shift + ": " + names + "\n")
		}
	}

	return b.String()
}
