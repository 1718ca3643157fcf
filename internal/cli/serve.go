// Package cli provides the command-line interface for the payoff builder.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/kshitizgarg19/payoff-builder/internal/logging"
	"github.com/kshitizgarg19/payoff-builder/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for a browser chart front-end",
		Long: `Start the JSON HTTP API. The browser front-end posts strategies to
/api/v1/payoff or edits the session strategy under /api/v1/strategy and
plots the returned curve.`,
		Example: `  payoff-builder serve
  payoff-builder serve --port 9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port, _ := cmd.Flags().GetInt("port"); port != 0 {
				app.Config.Server.Port = port
			}
			logger := logging.WithComponent(app.Logger, "server")
			return server.New(app.Config, logger).Run()
		},
	}

	cmd.Flags().Int("port", 0, "listen port (default: from config)")

	return cmd
}
