package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mbeaudoin/crew-planner/cmd/cli/commands"
	"github.com/mbeaudoin/crew-planner/internal/config"
	"github.com/mbeaudoin/crew-planner/pkg/postgres"
	"github.com/mbeaudoin/crew-planner/pkg/utils/logging"
)

func main() {
	app := &commands.AppContext{}
	var env string
	var configPath string
	var database *postgres.DB

	rootCmd := &cobra.Command{
		Use:   "crew-planner",
		Short: "Weekly vehicle crew planning for field service teams",
		Long: `crew-planner assigns staff to vehicle crews for a work week, honoring
supervisor placements, driver rotation preferences, swing vehicle fallbacks,
and staff availability.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env if present (local development)
			_ = godotenv.Load(".env")

			logger, err := logging.InitLogger(env)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			app.Logger = logger
			app.Ctx = context.Background()

			if configPath != "" {
				app.Cfg, err = config.LoadFromPath(configPath)
			} else {
				app.Cfg, err = config.Load()
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			connString := os.Getenv("DATABASE_URL")
			if connString == "" {
				return fmt.Errorf("DATABASE_URL environment variable is not set")
			}

			database, err = postgres.NewDB(app.Ctx, connString)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}

			if err := database.RunMigrations(app.Ctx); err != nil {
				database.Close()
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			app.Database = database
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if database != nil {
				database.Close()
			}
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment name, used to label log files")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the configuration file")

	rootCmd.AddCommand(commands.GeneratePlanningCmd(app))
	rootCmd.AddCommand(commands.ShowPlanningCmd(app))
	rootCmd.AddCommand(commands.ListStaffCmd(app))
	rootCmd.AddCommand(commands.ValidateConfigCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
