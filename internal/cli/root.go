// Package cli provides the command-line interface for the payoff builder.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kshitizgarg19/payoff-builder/internal/config"
	"github.com/kshitizgarg19/payoff-builder/internal/logging"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "payoff-builder",
		Short: "Options & futures strategy payoff builder",
		Long: `Payoff Builder constructs multi-leg options/futures strategies and
computes the resulting profit-and-loss curve, breakevens, and per-leg P&L.

Legs are given as colon-separated specs:
  options:  side:instrument:strike:premium[:lot]   e.g. buy:call:48200:320:25
  futures:  side:fut[:lot]                         e.g. sell:fut:2

Use 'payoff-builder curve' for a one-shot evaluation with an ASCII chart,
or 'payoff-builder serve' to expose the engine to a browser chart as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/payoff-builder)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newCurveCmd(app))
	rootCmd.AddCommand(newServeCmd(app))

	return rootCmd
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := app.NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Payoff Builder v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := app.NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]bool{"valid": true})
			}
			output.Success("✓ Configuration is valid")
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Curve")
	output.Printf("  Low Factor:       %.2f\n", cfg.Curve.LowFactor)
	output.Printf("  High Factor:      %.2f\n", cfg.Curve.HighFactor)
	output.Printf("  Samples:          %d\n", cfg.Curve.Samples)
	output.Printf("  BE Tolerance:     %.2f\n", cfg.Curve.BreakevenTolerance)
	output.Printf("  BE Interpolation: %v\n", cfg.Curve.InterpolateBreakeven)
	output.Println()

	output.Bold("Server")
	output.Printf("  Port:         %d\n", cfg.Server.Port)
	output.Printf("  CORS Origins: %v\n", cfg.Server.CORSOrigins)
	output.Println()

	output.Bold("UI")
	output.Printf("  Color Enabled: %v\n", cfg.UI.ColorEnabled)
	output.Printf("  Date Format:   %s\n", cfg.UI.DateFormat)
	output.Println()

	output.Bold("Log")
	output.Printf("  Level:   %s\n", cfg.Log.Level)
	output.Printf("  Console: %v\n", cfg.Log.Console)
	output.Printf("  File:    %v\n", cfg.Log.File)
}
