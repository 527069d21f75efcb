/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/cristianoliveira/dragselect/internal/colors"
	"github.com/cristianoliveira/dragselect/internal/config"
	"github.com/cristianoliveira/dragselect/internal/logging"
	"github.com/cristianoliveira/dragselect/internal/version"
	"github.com/spf13/cobra"
)

var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dragselect",
	Short: "Drag and slide multi-select for terminal lists.",
	Long: `Drag and slide multi-select for terminal lists.

Long press an item and drag to select a range. Dragging into the top or
bottom edge of the list scrolls it and keeps extending the selection.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/dragselect/config.toml)")
}

// setup loads configuration and starts file logging before any subcommand.
func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		if err := os.Setenv(config.EnvConfigPath, configPath); err != nil {
			return err
		}
	}
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning("file logging disabled:", err.Error())
	}
	logging.Debug("command started", "command", cmd.CommandPath(), "args", args)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	logging.Debug("command finished", "command", cmd.CommandPath())
	return logging.ShutdownGlobal()
}
