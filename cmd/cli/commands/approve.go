package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/services"
)

// ApproveCmd creates the approve command
func ApproveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <record_id>...",
		Short: "Approve submitted records by ID (coordinator only)",
		Long: `Approve one or more submitted records, identified by the IDs shown in
adminList. Approvals are checked against each person's declared maximum;
records over capacity are skipped with a warning, not failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			if err := services.Authorize(app.Cfg, secret); err != nil {
				return err
			}

			ctx, cancel := app.OpContext()
			defer cancel()

			result, err := services.ApproveAssignments(ctx, app.Database, app.Logger, app.Cfg, args)
			if err != nil {
				return err
			}

			if len(result.Approved) > 0 {
				fmt.Printf("\n✓ Approved %d records:\n", len(result.Approved))
				for _, r := range result.Approved {
					fmt.Printf("  %s  %s  %-9s %s\n", r.ID, r.Email, r.Day, r.Shift)
				}
			}

			if len(result.Skipped) > 0 {
				fmt.Printf("\n⚠ Skipped %d records:\n", len(result.Skipped))
				for _, s := range result.Skipped {
					fmt.Printf("  %s  %v\n", s.ID, s.Reason)
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
