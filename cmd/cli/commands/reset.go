package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/core/services"
)

// ResetPeriodCmd creates the resetPeriod command
func ResetPeriodCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resetPeriod",
		Short: "Delete every record and start a fresh scheduling period (coordinator only)",
		Long: `Delete every availability record and approval, starting a fresh scheduling
period. The store schema is preserved, so submissions work immediately
afterwards.

This cannot be undone. Export the schedule first (calendar --csv) if the
old period matters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			if err := services.Authorize(app.Cfg, secret); err != nil {
				return err
			}

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				fmt.Print("This deletes every record for the current period. Type 'reset' to confirm: ")
				scanner := bufio.NewScanner(os.Stdin)
				if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "reset" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			ctx, cancel := app.OpContext()
			defer cancel()

			result, err := services.ResetPeriod(ctx, app.Database, app.Logger, app.Cfg)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Period reset. The ledger is empty and ready for submissions.\n")
			if result.NextPeriodStart != nil {
				fmt.Printf("Next period starts %s.\n", result.NextPeriodStart.Format("Monday, 2 January 2006"))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("secret", "", "Coordinator shared secret")
	cmd.MarkFlagRequired("secret")
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}
