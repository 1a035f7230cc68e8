// Package commands holds the inventory CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/odyssey-erp/inventory-api/internal/app"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// NewRootCommand builds the command tree. Configuration comes from the environment.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory data service",
		Long: `Inventory data service for products, categories, suppliers, orders, roles and users.

Subcommands:
  serve    - Start the HTTP API
  migrate  - Apply pending schema migrations
  seed     - Load demo data through the domain services
  worker   - Run the background job worker
  routes   - List the HTTP routes`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
		newWorkerCommand(),
		newRoutesCommand(),
	)
	return root
}

func loadConfig() (*app.Config, error) {
	return app.LoadConfig()
}
