package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/cmd/cli/commands"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/internal/config"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/clients/sheetsclient"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/db"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/postgres"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/sheetssql"
	"github.com/ankitdixit23/The-Pub-Scheduler-Uchicago/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pubsched",
		Short: "Pub Scheduler CLI - Manage weekly pub shift scheduling",
		Long: `A CLI tool for the campus pub's weekly shift scheduling: attendants submit
availability, coordinators approve shifts, and everyone reads the calendar.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.SubmitCmd(appRef()))
	rootCmd.AddCommand(commands.CalendarCmd(appRef()))
	rootCmd.AddCommand(commands.MyShiftsCmd(appRef()))
	rootCmd.AddCommand(commands.AdminListCmd(appRef()))
	rootCmd.AddCommand(commands.ApproveCmd(appRef()))
	rootCmd.AddCommand(commands.ResetPeriodCmd(appRef()))
	rootCmd.AddCommand(commands.ShiftsCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, allocating it before initApp fills
// it in so commands built at startup see the initialized dependencies.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, store client, and database
func initApp() error {
	var err error
	appRef()
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully",
		zap.String("store_backend", app.Cfg.StoreBackend))

	switch app.Cfg.StoreBackend {
	case "sheets":
		if err := initSheetsStore(); err != nil {
			return err
		}
	case "postgres":
		if err := initPostgresStore(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown store backend %q", app.Cfg.StoreBackend)
	}

	app.Logger.Info("Store initialized", zap.String("backend", app.Cfg.StoreBackend))
	return nil
}

func initSheetsStore() error {
	app.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	app.Logger.Info("Initializing sheets client")
	app.SheetsClient, err = sheetsclient.NewClient(app.Ctx, oauthCfg, env)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}

	schema, err := sheetssql.SchemaFromModels(db.Assignment{})
	if err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	app.Logger.Info("Connecting to database", zap.String("spreadsheet_id", app.Cfg.DatabaseSheetID))
	ssqlDB, err := sheetssql.NewDB(app.SheetsClient, app.Cfg.DatabaseSheetID, schema)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	app.Database = db.NewDB(ssqlDB)
	return nil
}

func initPostgresStore() error {
	app.Logger.Info("Connecting to postgres")
	pg, err := postgres.NewDB(app.Ctx, app.Cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := pg.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Database = pg
	return nil
}
