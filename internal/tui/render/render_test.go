package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/dragselect/internal/colors"
	"github.com/stretchr/testify/assert"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestRow(t *testing.T) {
	tests := []struct {
		name     string
		state    RowState
		expected string
	}{
		{"normal mode", RowState{Label: "Item 3", Width: 16}, "    Item 3      "},
		{"select mode unselected", RowState{Label: "Item 3", SelectMode: true, Width: 16}, "[ ] Item 3      "},
		{"select mode selected", RowState{Label: "Item 3", SelectMode: true, Selected: true, Width: 16}, "[x] Item 3      "},
		{"locked", RowState{Label: "Item 6", Locked: true, SelectMode: true, Width: 20}, "[ ] Item 6 (locked) "},
		{"truncated", RowState{Label: "A very long label", Width: 10}, "    A very"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plain(Row(tt.state))
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.state.Width, lipgloss.Width(got))
		})
	}
}

func TestCellSlicesColumns(t *testing.T) {
	state := RowState{Label: "Item 12", SelectMode: true, Selected: true, Width: 10}

	full := Cell(state, 3, 0, 10)
	assert.Equal(t, []string{"[x]       ", "Item 12   ", "          "}, mapPlain(full))

	right := Cell(state, 2, 5, 10)
	assert.Equal(t, []string{"     ", "12   "}, mapPlain(right))

	empty := Cell(state, 2, 8, 4)
	assert.Equal(t, []string{"", ""}, mapPlain(empty))
}

func TestHeaderAndStatusFitWidth(t *testing.T) {
	assert.Equal(t, "drag", plain(Header(4, "dragselect demo")))

	status := plain(Status(StatusState{
		Behavior:    "SelectAndReverse",
		State:       "SlideState",
		Orientation: "vertical",
		Selected:    3,
		Total:       500,
		Width:       200,
	}))
	assert.Contains(t, status, "mode: SelectAndReverse")
	assert.Contains(t, status, "state: SlideState")
	assert.Contains(t, status, "selected: 3/500")
	assert.Equal(t, 200, lipgloss.Width(status))
}

func TestAnsiColorNumber(t *testing.T) {
	assert.Equal(t, "34", ansiColorNumber(colors.Blue))
	assert.Equal(t, "33", ansiColorNumber(colors.Yellow))
	assert.Equal(t, "", ansiColorNumber("x"))
	assert.Equal(t, "", ansiColorNumber("\033[0m"))
}

func mapPlain(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = plain(l)
	}
	return out
}
