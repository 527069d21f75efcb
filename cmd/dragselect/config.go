/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"

	"github.com/cristianoliveira/dragselect/cmd"
	"github.com/spf13/cobra"
)

type configClient interface {
	ConfigTOML() ([]byte, error)
}

// NewConfigCmd creates the config command with explicit dependencies.
func NewConfigCmd(client configClient) *cobra.Command {
	if client == nil {
		panic("NewConfigCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as TOML.

Values come from the defaults, the config file and DRAGSELECT_* environment
variables, in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client.ConfigTOML()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

var configCmd = NewConfigCmd(appClient)

func init() {
	cmd.RootCmd.AddCommand(configCmd)
}
