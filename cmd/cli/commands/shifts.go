package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/model"
)

// ShiftsCmd creates the shifts command
func ShiftsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shifts",
		Short: "Show the weekly shift times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("\nWeekly shifts (closed Sundays):\n\n")
			for _, day := range model.Days {
				shifts, _ := model.ShiftsFor(day)
				fmt.Printf("%s:\n", day)
				for i, shift := range shifts {
					fmt.Printf("  %d. %s\n", i+1, shift)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
