package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/drake/pickers/config"
	"github.com/drake/pickers/country"
	"github.com/drake/pickers/logging"
	"github.com/drake/pickers/screen"
	"github.com/drake/pickers/ui/tui"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFile    string

	cfg    config.Config
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pickers",
		Short: "Searchable country and language pickers",
		Long: `pickers shows a filterable list of countries or languages with a
banner carousel on top.

Type to search, tab and shift+tab move the carousel, enter selects.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.InitFile(), "path to init.lua")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the log level (DEBUG, INFO, WARN, ERROR)")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "override the log file path")

	root.AddCommand(
		&cobra.Command{
			Use:   "countries",
			Short: "Pick a country",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return tui.Run(screen.NewCountry(a.cfg.Country, country.NewGenerator()))
			},
		},
		&cobra.Command{
			Use:   "languages",
			Short: "Pick a language",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return tui.Run(screen.NewLanguage(a.cfg.Language))
			},
		},
		newListCmd(a),
	)

	return root
}

// setup loads the configuration, applies flag overrides and starts logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}

	closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	a.cfg = cfg
	a.closer = closer

	log.WithFields(log.Fields{
		"command": cmd.Name(),
		"config":  a.configPath,
	}).Debug("Starting")
	return nil
}

func (a *app) teardown() {
	if a.closer != nil {
		a.closer.Close()
		a.closer = nil
	}
}
