package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/services"
)

// MyShiftsCmd creates the myShifts command
func MyShiftsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "myShifts <email>",
		Short: "Show your submitted slots and their approval status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]

			ctx, cancel := app.OpContext()
			defer cancel()

			records, err := services.MyShifts(ctx, app.Database, app.Logger, app.Cfg, email)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Printf("\nNo submission found for %s this period.\n\n", email)
				return nil
			}

			fmt.Printf("\nShifts for %s (max %d approved):\n\n", email, records[0].MaxShifts)
			for _, r := range records {
				status := "pending"
				if r.Approved {
					status = "approved"
				}
				fmt.Printf("  %-9s %-20s %s\n", r.Day, r.Shift, status)
			}
			fmt.Println()

			return nil
		},
	}
}
