/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"

	"github.com/cristianoliveira/dragselect/cmd"
	"github.com/cristianoliveira/dragselect/internal/version"
	"github.com/spf13/cobra"
)

type versionClient interface {
	Version() string
	BuildInfo() version.Info
}

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	var long bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of dragselect.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if long {
				fmt.Fprint(cmd.OutOrStdout(), client.BuildInfo().Long())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dragselect version %s\n", client.Version())
			return nil
		},
	}
	versionCmd.Flags().BoolVarP(&long, "long", "l", false, "include commit, Go version and platform")
	return versionCmd
}

var versionCmd = NewVersionCmd(appClient)

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
