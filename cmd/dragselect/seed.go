/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/dragselect/cmd"
	"github.com/cristianoliveira/dragselect/internal/colors"
	"github.com/cristianoliveira/dragselect/internal/config"
	"github.com/spf13/cobra"
)

type seedClient interface {
	CatalogPath() string
	Seed(ctx context.Context, path string, n int, locked []int) error
}

const seedCommandLong = `(Re)create the SQLite item catalog.

USAGE:
    dragselect seed [OPTIONS]

OPTIONS:
    --items N         Number of items to write
    --locked LIST     Comma separated positions that refuse selection

EXAMPLES:
    # 1000 items with items 6 and 10 locked
    dragselect seed --items 1000 --locked 6,10

    # then browse them
    dragselect demo --backend sqlite`

// NewSeedCmd creates the seed command with explicit dependencies.
func NewSeedCmd(client seedClient) *cobra.Command {
	if client == nil {
		panic("NewSeedCmd: client dependency cannot be nil")
	}

	var (
		items  int
		locked []int
	)
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the SQLite item catalog",
		Long:  seedCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("items") {
				items = config.GetInt("item_count", items)
			}
			if !cmd.Flags().Changed("locked") {
				locked = config.GetIntList("locked_items")
			}
			return runSeed(cmd.Context(), client, items, locked)
		},
	}
	seedCmd.Flags().IntVar(&items, "items", 500, "number of items")
	seedCmd.Flags().IntSliceVar(&locked, "locked", nil, "positions that refuse selection")
	return seedCmd
}

func runSeed(ctx context.Context, client seedClient, items int, locked []int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if items < 0 {
		return fmt.Errorf("seed: --items must not be negative, got %d", items)
	}
	path := client.CatalogPath()
	if err := client.Seed(ctx, path, items, locked); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	colors.Success(fmt.Sprintf("wrote %d items to %s", items, path))
	return nil
}

var seedCmd = NewSeedCmd(appClient)

func init() {
	cmd.RootCmd.AddCommand(seedCmd)
}
