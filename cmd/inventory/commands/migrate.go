package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odyssey-erp/inventory-api/internal/app"
	"github.com/odyssey-erp/inventory-api/internal/platform/db"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Apply the embedded SQL migrations in order. Versions already recorded in
schema_migrations are skipped, so the command is safe to re-run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg)
			pool, err := db.New(cmd.Context(), db.Options{
				DSN:              cfg.PGDSN,
				MaxConns:         2,
				StatementTimeout: cfg.PGStatementTimeout,
			})
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := db.Migrate(cmd.Context(), pool, logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d migration(s) applied\n", applied)
			return err
		},
	}
}
