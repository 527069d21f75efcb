/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/dragselect/cmd"
	"github.com/cristianoliveira/dragselect/internal/catalog"
	"github.com/cristianoliveira/dragselect/internal/colors"
	"github.com/cristianoliveira/dragselect/internal/config"
	"github.com/cristianoliveira/dragselect/internal/logging"
	"github.com/cristianoliveira/dragselect/internal/selection"
	"github.com/cristianoliveira/dragselect/internal/tui"
	"github.com/spf13/cobra"
)

type demoClient interface {
	OpenCatalog(ctx context.Context) catalog.Store
	Options() (tui.Options, error)
	RunTUI(ctx context.Context, items []catalog.Item, opts tui.Options) error
}

const demoCommandLong = `Open a list of items and select them by dragging.

USAGE:
    dragselect demo [OPTIONS]

OPTIONS:
    --items N           Number of generated items
    --behavior B        select_and_reverse, select_and_keep, select_and_undo,
                        toggle_and_reverse, toggle_and_keep or toggle_and_undo
    --orientation O     vertical or horizontal
    --backend B         memory or sqlite

KEYS:
    long press + drag   select a range, scrolling at the edges
    s                   slide select from the checkbox column
    a / c               select all / clear
    1-6                 switch behavior
    o                   switch orientation
    esc                 leave select mode
    ?                   help
    q                   quit`

type demoFlags struct {
	items       int
	behavior    string
	orientation string
	backend     string
}

// NewDemoCmd creates the demo command with explicit dependencies.
func NewDemoCmd(client demoClient) *cobra.Command {
	if client == nil {
		panic("NewDemoCmd: client dependency cannot be nil")
	}

	var flags demoFlags
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the drag select demo",
		Long:  demoCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyDemoFlags(cmd, flags); err != nil {
				return err
			}
			return runDemo(cmd.Context(), client)
		},
	}
	demoCmd.Flags().IntVar(&flags.items, "items", 500, "number of generated items")
	demoCmd.Flags().StringVar(&flags.behavior, "behavior", "", "selection behavior")
	demoCmd.Flags().StringVar(&flags.orientation, "orientation", "", "vertical or horizontal")
	demoCmd.Flags().StringVar(&flags.backend, "backend", "", "catalog backend: memory or sqlite")
	return demoCmd
}

// applyDemoFlags overrides configuration with the flags given on the
// command line. Invalid values are rejected before they reach the config,
// whose validators would silently fall back to defaults.
func applyDemoFlags(cmd *cobra.Command, flags demoFlags) error {
	if cmd.Flags().Changed("items") {
		if flags.items < 0 {
			return fmt.Errorf("demo: --items must not be negative, got %d", flags.items)
		}
		config.Set("item_count", strconv.Itoa(flags.items))
	}
	if cmd.Flags().Changed("behavior") {
		b, err := selection.ParseBehavior(flags.behavior)
		if err != nil {
			return fmt.Errorf("demo: --behavior: %w", err)
		}
		config.Set("behavior", b.Key())
	}
	if cmd.Flags().Changed("orientation") {
		o, err := tui.ParseOrientation(flags.orientation)
		if err != nil {
			return fmt.Errorf("demo: --orientation: %w", err)
		}
		config.Set("orientation", o.String())
	}
	if cmd.Flags().Changed("backend") {
		backend := strings.ToLower(strings.TrimSpace(flags.backend))
		if backend != catalog.BackendMemory && backend != catalog.BackendSQLite {
			return fmt.Errorf("demo: --backend: unknown backend %q", flags.backend)
		}
		config.Set("catalog_backend", backend)
	}
	return nil
}

func runDemo(ctx context.Context, client demoClient) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts, err := client.Options()
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	store := client.OpenCatalog(ctx)
	defer store.Close()
	items, err := store.Items(ctx)
	if err != nil {
		return fmt.Errorf("demo: load items: %w", err)
	}
	if len(items) == 0 {
		colors.Warning("the catalog is empty, run 'dragselect seed' or raise --items")
		return nil
	}

	logging.Info("demo started", "items", len(items), "behavior", opts.Behavior.Key(), "orientation", opts.Orientation.String())
	colors.Mute(true)
	err = client.RunTUI(ctx, items, opts)
	colors.Mute(false)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return nil
}

var demoCmd = NewDemoCmd(appClient)

func init() {
	cmd.RootCmd.AddCommand(demoCmd)
}
