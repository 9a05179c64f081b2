package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/model"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/services"
)

// AdminListCmd creates the adminList command
func AdminListCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adminList",
		Short: "List every record in the current period, with IDs for approval (coordinator only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			if err := services.Authorize(app.Cfg, secret); err != nil {
				return err
			}

			ctx, cancel := app.OpContext()
			defer cancel()

			records, err := services.ListAssignments(ctx, app.Database, app.Logger, app.Cfg)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("\nNo submissions this period.")
				return nil
			}

			fmt.Printf("\nCurrent availability (%d records):\n", len(records))
			for _, day := range model.Days {
				dayRecords := services.RecordsForDay(records, day)
				if len(dayRecords) == 0 {
					continue
				}

				fmt.Printf("\n%s:\n", day)
				for _, r := range dayRecords {
					status := "pending"
					if r.Approved {
						status = "approved"
					}
					fmt.Printf("  %s  %-20s %-25s %-30s %-8s (shirt %s, max %d, %d/%d approved)\n",
						r.ID,
						r.Shift,
						r.Name,
						r.Email,
						status,
						r.Tshirt,
						r.MaxShifts,
						services.ApprovedCount(records, r.Email),
						r.MaxShifts,
					)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("secret", "", "Coordinator shared secret")
	cmd.MarkFlagRequired("secret")

	return cmd
}
