// Package cmd holds the CLI surface. The root command launches the
// interactive viewer; subcommands expose headless pieces of the pipeline.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/theted/aws-concept-map/catalog"
	"github.com/theted/aws-concept-map/config"
	"github.com/theted/aws-concept-map/terminal"
)

var version = "0.3.0"

var (
	configPath string
	dataPath   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "conceptmap",
	Short: "A pannable, zoomable map of cloud services in your terminal",
	Long: "conceptmap renders a service catalog as a navigable 2D canvas:\n" +
		"drag to pan, scroll to zoom, click or arrow-key between services\n" +
		"to highlight their connections.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cat, cfg, err := loadInputs(logger)
		if err != nil {
			return err
		}

		app, err := terminal.New(cat, cfg, logger)
		if err != nil {
			logger.Error("startup failed", "err", err)
			return err
		}
		return app.Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file (defaults used when omitted)")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "TOML dataset file (embedded catalog used when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(layoutCmd())
}

// Execute runs the root command, printing the error once at the top level.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "conceptmap: %v\n", err)
		return err
	}
	return nil
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "conceptmap",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

func loadInputs(logger *log.Logger) (*catalog.Catalog, config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, cfg, err
		}
		logger.Debug("loaded config", "path", configPath)
	}

	var cat *catalog.Catalog
	var err error
	if dataPath != "" {
		cat, err = catalog.Load(dataPath)
		logger.Debug("loaded dataset", "path", dataPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, cfg, err
	}
	return cat, cfg, nil
}
