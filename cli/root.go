package cli

import (
	"fmt"
	"os"

	"jobportal/config"
	"jobportal/logging"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	conf    config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "jobportal",
	Short: "Job portal API server",
	Long: `Job portal API server.

Database settings come from DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD and
DB_NAME (or DATABASE_URL); everything else from the config file or env.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		conf, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logging.Configure(logging.Config{Level: conf.Log.Level, Pretty: conf.Log.Pretty})

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
