package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/services"
)

// CalendarCmd creates the calendar command
func CalendarCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the weekly shift calendar (approved shifts by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			csvPath, _ := cmd.Flags().GetString("csv")
			approvedOnly := !all

			ctx, cancel := app.OpContext()
			defer cancel()

			if csvPath != "" {
				records, err := services.ListAssignments(ctx, app.Database, app.Logger, app.Cfg)
				if err != nil {
					return err
				}

				f, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", csvPath, err)
				}
				defer f.Close()

				if err := services.WriteScheduleCSV(f, records, approvedOnly); err != nil {
					return fmt.Errorf("failed to write %s: %w", csvPath, err)
				}

				fmt.Printf("\n✓ Schedule written to %s\n\n", csvPath)
				return nil
			}

			cal, err := services.ListCalendar(ctx, app.Database, app.Logger, app.Cfg, approvedOnly)
			if err != nil {
				return err
			}
			if cal == nil {
				if approvedOnly {
					fmt.Println("\nNo approved shifts yet. Try 'calendar --all' to include pending submissions.")
				} else {
					fmt.Println("\nNo schedule created yet. Submit availability to get started.")
				}
				return nil
			}

			if approvedOnly {
				fmt.Printf("\nThis week's schedule (approved):\n\n")
			} else {
				fmt.Printf("\nThis week's schedule (including pending):\n\n")
			}
			fmt.Print(services.FormatCalendarTable(cal))
			fmt.Printf("\n%d people, %d shift records across %d days\n\n", cal.People, cal.Records, cal.Days)

			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include pending (unapproved) submissions")
	cmd.Flags().String("csv", "", "Write the schedule to a CSV file instead of printing it")

	return cmd
}
