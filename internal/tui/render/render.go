// Package render draws the pieces of the drag-select demo screen.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/dragselect/internal/colors"
)

const (
	// GutterWidth is the width of the checkbox column in front of each row.
	GutterWidth    = 4
	checkedBox     = "[x] "
	uncheckedBox   = "[ ] "
	emptyGutter    = "    "
	lockedSuffix   = " (locked)"
	fieldSeparator = "  |  "
)

// RowState defines the inputs needed to render one item.
type RowState struct {
	Label      string
	Selected   bool
	Locked     bool
	SelectMode bool
	Width      int
}

// StatusState defines the inputs needed to render the status bar.
type StatusState struct {
	Behavior    string
	State       string
	Orientation string
	Selected    int
	Total       int
	Offset      int
	Width       int
}

// Header renders the title line.
func Header(width int, title string) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	return headerStyle.Render(fit(title, width))
}

// Row renders an item as a single line of exactly state.Width cells.
func Row(state RowState) string {
	return rowStyle(state).Render(fit(gutter(state)+label(state), state.Width))
}

// Cell renders columns [from, to) of an item laid out as a column of
// height lines and state.Width cells: checkbox first, label second.
func Cell(state RowState, height, from, to int) []string {
	style := rowStyle(state)
	lines := make([]string, height)
	for i := range lines {
		var text string
		switch i {
		case 0:
			text = gutter(state)
		case 1:
			text = label(state)
		}
		text = fit(text, state.Width)
		lines[i] = style.Render(slice(text, from, to))
	}
	return lines
}

// Status renders the status bar.
func Status(state StatusState) string {
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	parts := []string{
		"mode: " + state.Behavior,
		"state: " + state.State,
		fmt.Sprintf("selected: %d/%d", state.Selected, state.Total),
		state.Orientation,
		fmt.Sprintf("offset: %d", state.Offset),
	}
	return statusStyle.Render(fit(strings.Join(parts, fieldSeparator), state.Width))
}

func rowStyle(state RowState) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch {
	case state.Selected:
		style = style.Background(lipgloss.Color(ansiColorNumber(colors.Blue))).Foreground(lipgloss.Color("0"))
	case state.Locked:
		style = style.Foreground(lipgloss.Color("241"))
	}
	return style
}

func gutter(state RowState) string {
	if !state.SelectMode {
		return emptyGutter
	}
	if state.Selected {
		return checkedBox
	}
	return uncheckedBox
}

func label(state RowState) string {
	if state.Locked {
		return state.Label + lockedSuffix
	}
	return state.Label
}

// fit pads or truncates value to exactly width runes. A width <= 0 keeps
// value unchanged.
func fit(value string, width int) string {
	if width <= 0 {
		return value
	}
	n := utf8.RuneCountInString(value)
	if n > width {
		return string([]rune(value)[:width])
	}
	return value + strings.Repeat(" ", width-n)
}

func slice(value string, from, to int) string {
	runes := []rune(value)
	if from < 0 {
		from = 0
	}
	if to > len(runes) {
		to = len(runes)
	}
	if from >= to {
		return ""
	}
	return string(runes[from:to])
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
