package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/model"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/services"
)

// SubmitCmd creates the submit command
func SubmitCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <name> <email> <tshirt_size> <max_shifts> <day:shift_no>...",
		Short: "Submit weekly availability (1-4 slots, e.g. Monday:1 Friday:2)",
		Long: `Submit your availability for the current scheduling period.

Each slot is given as day:shift_no, where shift_no is 1 (early) or 2 (late).
Run 'shifts' to see the weekly shift times. Submitting again replaces your
previous submission in full.`,
		Args: cobra.MinimumNArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxShifts, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("max_shifts must be a number: %w", err)
			}

			slots := make([]model.Slot, 0, len(args)-4)
			for _, arg := range args[4:] {
				slot, err := parseSlotArg(arg)
				if err != nil {
					return err
				}
				slots = append(slots, slot)
			}

			ctx, cancel := app.OpContext()
			defer cancel()

			result, err := services.SubmitAvailability(ctx, app.Database, app.Logger, app.Cfg, services.Submission{
				Name:      args[0],
				Email:     args[1],
				Tshirt:    args[2],
				MaxShifts: maxShifts,
				Slots:     slots,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Availability submitted!\n\n")
			if result.Replaced > 0 {
				fmt.Printf("Replaced your previous submission (%d records).\n\n", result.Replaced)
			}
			fmt.Printf("Pending records:\n")
			for _, r := range result.Created {
				fmt.Printf("  %s  %-9s %s\n", r.ID, r.Day, r.Shift)
			}
			fmt.Printf("\nA coordinator will approve up to %d of these.\n\n", maxShifts)

			return nil
		},
	}
}

// parseSlotArg turns "Monday:1" into the catalog slot for Monday's first
// shift. Shift numbers are 1-based, matching the 'shifts' listing.
func parseSlotArg(arg string) (model.Slot, error) {
	day, no, ok := strings.Cut(arg, ":")
	if !ok {
		return model.Slot{}, fmt.Errorf("slot %q must be day:shift_no, e.g. Monday:1", arg)
	}

	shifts, ok := model.ShiftsFor(day)
	if !ok {
		return model.Slot{}, fmt.Errorf("%q is not an operating day (the pub is closed on Sundays)", day)
	}

	n, err := strconv.Atoi(no)
	if err != nil || n < 1 || n > len(shifts) {
		return model.Slot{}, fmt.Errorf("slot %q: shift_no must be between 1 and %d", arg, len(shifts))
	}

	return model.Slot{Day: day, Shift: shifts[n-1]}, nil
}
