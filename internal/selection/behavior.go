package selection

import (
	"fmt"
	"strings"
)

// Behavior decides the state of items traversed during a drag-select.
type Behavior int

const (
	// SelectAndKeep selects the first item and every item passed over,
	// and keeps them selected when the pointer moves back.
	SelectAndKeep Behavior = iota
	// SelectAndReverse selects the first item and every item passed over,
	// and unselects them when the pointer moves back.
	SelectAndReverse
	// SelectAndUndo selects the first item and every item passed over,
	// and restores their original state when the pointer moves back.
	SelectAndUndo
	// ToggleAndKeep toggles the first item, applies that state to every
	// item passed over and keeps it when the pointer moves back.
	ToggleAndKeep
	// ToggleAndReverse toggles the first item, applies that state to every
	// item passed over and applies the inverse when the pointer moves back.
	ToggleAndReverse
	// ToggleAndUndo toggles the first item, applies that state to every
	// item passed over and restores the original state on move back.
	ToggleAndUndo
)

// Behaviors lists every behavior in declaration order.
var Behaviors = []Behavior{
	SelectAndKeep,
	SelectAndReverse,
	SelectAndUndo,
	ToggleAndKeep,
	ToggleAndReverse,
	ToggleAndUndo,
}

var behaviorNames = map[Behavior]string{
	SelectAndKeep:    "SelectAndKeep",
	SelectAndReverse: "SelectAndReverse",
	SelectAndUndo:    "SelectAndUndo",
	ToggleAndKeep:    "ToggleAndKeep",
	ToggleAndReverse: "ToggleAndReverse",
	ToggleAndUndo:    "ToggleAndUndo",
}

func (b Behavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Behavior(%d)", int(b))
}

// Key returns the snake_case spelling used in configuration files.
func (b Behavior) Key() string {
	name := b.String()
	var sb strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ParseBehavior accepts either spelling ("ToggleAndUndo", "toggle_and_undo"),
// case-insensitively, with '-' or '_' separators.
func ParseBehavior(s string) (Behavior, error) {
	normalized := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
	for _, b := range Behaviors {
		if strings.ToLower(b.String()) == normalized {
			return b, nil
		}
	}
	return SelectAndReverse, fmt.Errorf("unknown selection behavior %q", s)
}

// Toggles reports whether the behavior belongs to the toggle family.
func (b Behavior) Toggles() bool {
	return b == ToggleAndKeep || b == ToggleAndReverse || b == ToggleAndUndo
}

// Target returns the state an item should take.
//
// inRange is true when the item lies inside the materialized range (the
// pointer moved over it) and false when the range receded off it.
// firstWasSelected is the anchor's state before the gesture; original is
// the item's own state before the gesture.
func (b Behavior) Target(inRange, firstWasSelected, original bool) bool {
	switch b {
	case SelectAndKeep:
		return true
	case SelectAndUndo:
		if inRange {
			return true
		}
		return original
	case ToggleAndKeep:
		return !firstWasSelected
	case ToggleAndReverse:
		if inRange {
			return !firstWasSelected
		}
		return firstWasSelected
	case ToggleAndUndo:
		if inRange {
			return !firstWasSelected
		}
		return original
	default: // SelectAndReverse
		return inRange
	}
}

// AnchorTarget returns the state the anchor item takes when a gesture starts.
func (b Behavior) AnchorTarget(firstWasSelected bool) bool {
	if b.Toggles() {
		return !firstWasSelected
	}
	return true
}
