package catalog

import "context"

// Memory holds generated items.
type Memory struct {
	items []Item
}

// NewMemory generates n items; positions in locked refuse selection.
func NewMemory(n int, locked []int) *Memory {
	if n < 0 {
		n = 0
	}
	set := lockedSet(locked)
	items := make([]Item, n)
	for i := range items {
		items[i] = itemAt(i, set)
	}
	return &Memory{items: items}
}

func (m *Memory) Items(ctx context.Context) ([]Item, error) {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *Memory) Count(ctx context.Context) (int, error) {
	return len(m.items), nil
}

func (m *Memory) Close() error { return nil }
