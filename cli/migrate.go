package cli

import (
	"fmt"

	"jobportal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
	Long:  `Apply or revert the SQL migrations matched by the data source's migration patterns.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd, database.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd, database.Down)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current migration version",
	RunE:  runMigrateVersion,
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateVersionCmd)
}

func runMigrate(cmd *cobra.Command, direction database.Direction) error {
	db := database.Database{Source: database.NewDataSource(conf.Database)}

	version, err := db.Migrate(direction)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "migrations %s complete, version %d\n", direction, version)
	return nil
}

func runMigrateVersion(cmd *cobra.Command, args []string) error {
	db := database.Database{Source: database.NewDataSource(conf.Database)}

	version, dirty, err := db.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "version %d", version)
	if dirty {
		fmt.Fprint(cmd.OutOrStdout(), " (dirty)")
	}
	fmt.Fprintln(cmd.OutOrStdout())

	return nil
}
