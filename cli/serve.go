package cli

import (
	"fmt"

	"jobportal/controllers"
	"jobportal/database"
	"jobportal/logging"
	"jobportal/services"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Connect to the database, apply pending migrations and serve the HTTP API.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := logging.WithComponent("server")

	if err := database.DB.Init(database.NewDataSource(conf.Database)); err != nil {
		return fmt.Errorf("failed to initialise database: %w", err)
	}
	defer database.DB.Close()

	services.JWTServices.Init(conf.JWT)

	app := controllers.NewApplication()

	addr := fmt.Sprintf(":%d", conf.Server.Port)
	logger.Info().Str("addr", addr).Msg("listening")

	return app.Listen(addr)
}
