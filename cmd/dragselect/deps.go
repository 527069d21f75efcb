package main

import (
	"context"

	"github.com/cristianoliveira/dragselect/internal/catalog"
	"github.com/cristianoliveira/dragselect/internal/config"
	"github.com/cristianoliveira/dragselect/internal/tui"
	"github.com/cristianoliveira/dragselect/internal/version"
)

// defaultClient wires the commands to the real packages.
type defaultClient struct{}

var appClient = defaultClient{}

func (defaultClient) OpenCatalog(ctx context.Context) catalog.Store {
	return catalog.NewFromConfig(ctx)
}

func (defaultClient) Options() (tui.Options, error) {
	return tui.OptionsFromConfig()
}

func (defaultClient) RunTUI(ctx context.Context, items []catalog.Item, opts tui.Options) error {
	return tui.Run(ctx, items, opts)
}

func (defaultClient) Seed(ctx context.Context, path string, n int, locked []int) error {
	s, err := catalog.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Seed(ctx, n, locked)
}

func (defaultClient) CatalogPath() string {
	return config.Get("catalog_path", "")
}

func (defaultClient) ConfigTOML() ([]byte, error) {
	return config.TOML()
}

func (defaultClient) Version() string {
	return version.String()
}

func (defaultClient) BuildInfo() version.Info {
	return version.Current()
}
