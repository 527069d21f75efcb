// Package catalog provides the items shown by the demo list.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/cristianoliveira/dragselect/internal/colors"
	"github.com/cristianoliveira/dragselect/internal/config"
)

const (
	// BackendMemory generates items on the fly.
	BackendMemory = "memory"
	// BackendSQLite reads items from a SQLite database.
	BackendSQLite = "sqlite"
)

// Item is one row of the demo list.
type Item struct {
	ID     string
	Label  string
	Locked bool
}

// Store is a read-only source of items.
type Store interface {
	Items(ctx context.Context) ([]Item, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// Options selects and sizes a backend.
type Options struct {
	Backend string
	Path    string
	Count   int
	Locked  []int
}

// OptionsFromConfig reads Options from the global configuration.
func OptionsFromConfig() Options {
	return Options{
		Backend: config.Get("catalog_backend", BackendMemory),
		Path:    config.Get("catalog_path", ""),
		Count:   config.GetInt("item_count", 500),
		Locked:  config.GetIntList("locked_items"),
	}
}

// Open returns the backend named by opts. An empty SQLite catalog is seeded
// with opts.Count items so the demo always has something to show.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendMemory:
		return NewMemory(opts.Count, opts.Locked), nil
	case BackendSQLite:
		s, err := OpenSQLite(opts.Path)
		if err != nil {
			return nil, err
		}
		n, err := s.Count(ctx)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		if n == 0 {
			if err := s.Seed(ctx, opts.Count, opts.Locked); err != nil {
				_ = s.Close()
				return nil, err
			}
		}
		return s, nil
	default:
		return nil, fmt.Errorf("catalog: unknown backend %q", opts.Backend)
	}
}

// NewFromConfig opens the configured backend and falls back to the memory
// backend when SQLite cannot be used.
func NewFromConfig(ctx context.Context) Store {
	opts := OptionsFromConfig()
	s, err := Open(ctx, opts)
	if err != nil {
		colors.Warning(fmt.Sprintf("failed to open %s catalog, falling back to memory: %v", opts.Backend, err))
		return NewMemory(opts.Count, opts.Locked)
	}
	return s
}

func itemAt(pos int, locked map[int]bool) Item {
	return Item{
		ID:     fmt.Sprintf("item-%d", pos),
		Label:  fmt.Sprintf("Item %d", pos),
		Locked: locked[pos],
	}
}

func lockedSet(positions []int) map[int]bool {
	set := make(map[int]bool, len(positions))
	for _, p := range positions {
		set[p] = true
	}
	return set
}
