// Package tui hosts the drag-select controller in a bubbletea list.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/dragselect/internal/autoscroll"
	"github.com/cristianoliveira/dragselect/internal/catalog"
	"github.com/cristianoliveira/dragselect/internal/config"
	"github.com/cristianoliveira/dragselect/internal/dragselect"
	"github.com/cristianoliveira/dragselect/internal/logging"
	"github.com/cristianoliveira/dragselect/internal/selection"
	"github.com/cristianoliveira/dragselect/internal/tui/render"
)

const (
	headerLines           = 1
	statusLines           = 1
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	title                 = "dragselect demo"
)

// Options configures a Model.
type Options struct {
	Behavior      selection.Behavior
	Orientation   dragselect.Orientation
	Config        dragselect.Config
	LongPress     time.Duration
	FrameInterval time.Duration
	Logger        logging.Logger
	// Clock drives auto-scroll timing. Nil uses time.Now.
	Clock func() time.Time
}

// DefaultOptions returns terminal-sized defaults: velocities in cells per
// second and a slide area covering the checkbox column.
func DefaultOptions() Options {
	return Options{
		Behavior:    selection.SelectAndReverse,
		Orientation: dragselect.Vertical,
		Config: dragselect.NewConfig().
			WithRelativeVelocity(2).
			WithMinimumVelocity(6).
			WithMaximumVelocity(60).
			WithSlideArea(0, render.GutterWidth),
		LongPress:     400 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
	}
}

// OptionsFromConfig reads Options from the global configuration.
func OptionsFromConfig() (Options, error) {
	opts := DefaultOptions()

	behavior, err := selection.ParseBehavior(config.Get("behavior", opts.Behavior.Key()))
	if err != nil {
		return opts, err
	}
	opts.Behavior = behavior

	orientation, err := ParseOrientation(config.Get("orientation", "vertical"))
	if err != nil {
		return opts, err
	}
	opts.Orientation = orientation

	edgeType, err := autoscroll.ParseEdgeType(config.Get("edge_type", autoscroll.EdgeInsideExtend.String()))
	if err != nil {
		return opts, err
	}
	maxEdge := config.GetFloat("hotspot_max_edge", 0)
	if maxEdge == 0 {
		maxEdge = autoscroll.NoMax
	}
	opts.Config = dragselect.NewConfig().
		WithEdgeType(edgeType).
		WithRelativeHotspotEdges(config.GetFloat("hotspot_relative_edge", dragselect.DefaultRelativeEdge)).
		WithMaximumHotspotEdges(maxEdge).
		WithRelativeVelocity(config.GetFloat("relative_velocity", 2)).
		WithMinimumVelocity(config.GetFloat("min_velocity", 6)).
		WithMaximumVelocity(config.GetFloat("max_velocity", 60)).
		WithAutoEnterSlide(config.GetBool("auto_enter_slide", false)).
		WithAllowDragInSlide(config.GetBool("allow_drag_in_slide", false)).
		WithSlideArea(config.GetFloat("slide_start", 0), config.GetFloat("slide_end", render.GutterWidth))
	opts.LongPress = time.Duration(config.GetInt("long_press_ms", 400)) * time.Millisecond
	opts.FrameInterval = time.Duration(config.GetInt("frame_interval_ms", 16)) * time.Millisecond
	return opts, nil
}

// ParseOrientation reads "vertical" or "horizontal".
func ParseOrientation(s string) (dragselect.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical":
		return dragselect.Vertical, nil
	case "horizontal":
		return dragselect.Horizontal, nil
	default:
		return dragselect.Vertical, fmt.Errorf("unknown orientation %q", s)
	}
}

// Model is the bubbletea model of the demo.
type Model struct {
	adapter *Adapter
	policy  *selection.Policy[string]
	helper  *dragselect.Helper
	list    *ListView
	keys    keyMap
	help    help.Model
	opts    Options
	log     logging.Logger

	width  int
	height int
	press  press

	statusMessage string
}

// NewModel creates the demo model over items.
func NewModel(items []catalog.Item, opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logging.With("component", "tui")
	}
	adapter := NewAdapter(items)
	policy := selection.NewPolicy[string](adapter, opts.Behavior)
	list := NewListView(adapter.Len, opts.Orientation)

	helperOpts := []dragselect.Option{dragselect.WithConfig(opts.Config), dragselect.WithLogger(log)}
	if opts.Clock != nil {
		helperOpts = append(helperOpts, dragselect.WithClock(opts.Clock))
	}
	helper := dragselect.New(policy, helperOpts...)
	helper.Attach(list)

	m := &Model{
		adapter: adapter,
		policy:  policy,
		helper:  helper,
		list:    list,
		keys:    defaultKeyMap(),
		help:    help.New(),
		opts:    opts,
		log:     log,
		width:   defaultViewportWidth,
		height:  defaultViewportHeight,
		press:   idlePress(),
	}
	m.layout()
	return m
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case longPressMsg:
		m.handleLongPress(msg)
	case frameMsg:
		m.list.RunFrame(msg.id)
	}
	cmds := append([]tea.Cmd{cmd}, m.list.FrameCmds(m.opts.FrameInterval)...)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	if m.list.Captured() || m.press.active {
		m.log.Debug("resize during gesture", "width", msg.Width, "height", msg.Height)
		m.list.RevokeIntercept()
		m.resetPress()
	}
	m.layout()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.statusMessage = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.helper.InactiveSelect()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case key.Matches(msg, m.keys.Up):
		m.list.ScrollBy(-1, m.list.Orientation())
	case key.Matches(msg, m.keys.Down):
		m.list.ScrollBy(1, m.list.Orientation())
	case key.Matches(msg, m.keys.PageUp):
		m.list.ScrollBy(-m.list.Extent(), m.list.Orientation())
	case key.Matches(msg, m.keys.PageDown):
		m.list.ScrollBy(m.list.Extent(), m.list.Orientation())
	case key.Matches(msg, m.keys.SelectAll):
		m.adapter.SetSelectMode(true)
		m.adapter.SelectAll()
	case key.Matches(msg, m.keys.Clear):
		m.adapter.DeselectAll()
	case key.Matches(msg, m.keys.Slide):
		m.activateSlide()
	case key.Matches(msg, m.keys.Orientation):
		m.switchOrientation()
	case key.Matches(msg, m.keys.Behavior):
		m.setBehavior(msg.String())
	case key.Matches(msg, m.keys.Leave):
		m.leaveSelectMode()
	}
	return nil
}

func (m *Model) activateSlide() {
	if err := m.helper.ActiveSlideSelect(); err != nil {
		m.fail("slide select", err)
		return
	}
	m.adapter.SetSelectMode(true)
}

func (m *Model) switchOrientation() {
	if m.list.Captured() {
		m.list.RevokeIntercept()
	}
	m.resetPress()
	m.helper.InactiveSelect()
	next := dragselect.Horizontal
	if m.list.Orientation() == dragselect.Horizontal {
		next = dragselect.Vertical
	}
	m.list.SetOrientation(next)
	m.log.Info("orientation switched", "orientation", next.String())
}

func (m *Model) setBehavior(digit string) {
	i := int(digit[0] - '1')
	if i < 0 || i >= len(selection.Behaviors) {
		return
	}
	m.policy.SetBehavior(selection.Behaviors[i])
	m.log.Info("behavior changed", "behavior", m.policy.Behavior().String())
}

func (m *Model) leaveSelectMode() {
	if !m.adapter.SelectMode() && !m.helper.IsSelectActivated() {
		return
	}
	m.adapter.SetSelectMode(false)
	m.helper.InactiveSelect()
}

func (m *Model) fail(action string, err error) {
	m.log.Error("action failed", "action", action, "error", err)
	m.statusMessage = fmt.Sprintf("%s: %v", action, err)
}

// layout sizes the list to whatever the header, status bar and help leave.
func (m *Model) layout() {
	m.help.Width = m.width
	listHeight := m.height - headerLines - statusLines - lipgloss.Height(m.help.View(m.keys))
	m.list.SetSize(m.width, max(listHeight, 1))
}

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(render.Header(m.width, m.headerText()))
	b.WriteString("\n")
	if m.list.Orientation() == dragselect.Horizontal {
		m.renderColumns(&b)
	} else {
		m.renderRows(&b)
	}
	b.WriteString(render.Status(render.StatusState{
		Behavior:    m.policy.Behavior().String(),
		State:       m.helper.State().String(),
		Orientation: m.list.Orientation().String(),
		Selected:    m.adapter.SelectedCount(),
		Total:       m.adapter.Len(),
		Offset:      m.list.Offset(),
		Width:       m.width,
	}))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) headerText() string {
	if m.statusMessage != "" {
		return title + "  " + m.statusMessage
	}
	if start, end := m.adapter.LastGesture(); start != selection.NoPosition {
		if end == selection.NoPosition {
			return fmt.Sprintf("%s  selecting from %d", title, start)
		}
		return fmt.Sprintf("%s  last gesture %d..%d", title, start, end)
	}
	return title + "  long press an item to start selecting"
}

func (m *Model) rowState(pos, width int) render.RowState {
	it, _ := m.adapter.Item(pos)
	return render.RowState{
		Label:      it.Label,
		Selected:   m.adapter.IsSelected(pos),
		Locked:     it.Locked,
		SelectMode: m.adapter.SelectMode(),
		Width:      width,
	}
}

func (m *Model) renderRows(b *strings.Builder) {
	width, height := m.list.Size()
	for row := 0; row < height; row++ {
		pos := m.list.Offset() + row
		if pos < m.adapter.Len() {
			b.WriteString(render.Row(m.rowState(pos, width)))
		} else {
			b.WriteString(strings.Repeat(" ", width))
		}
		b.WriteString("\n")
	}
}

func (m *Model) renderColumns(b *strings.Builder) {
	width, height := m.list.Size()
	lines := make([]strings.Builder, height)
	used := 0
	first := m.list.Offset() / horizontalCellWidth
	for pos := first; pos < m.adapter.Len() && used < width; pos++ {
		start := pos*horizontalCellWidth - m.list.Offset()
		from := max(0, -start)
		to := min(horizontalCellWidth, width-start)
		for i, text := range render.Cell(m.rowState(pos, horizontalCellWidth), height, from, to) {
			lines[i].WriteString(text)
		}
		used += to - from
	}
	for i := range lines {
		b.WriteString(lines[i].String())
		b.WriteString(strings.Repeat(" ", max(width-used, 0)))
		b.WriteString("\n")
	}
}

// Helper exposes the drag-select controller.
func (m *Model) Helper() *dragselect.Helper {
	return m.helper
}

// Adapter exposes the data model.
func (m *Model) Adapter() *Adapter {
	return m.adapter
}

// Run starts the full-screen demo and blocks until it exits.
func Run(ctx context.Context, items []catalog.Item, opts Options) error {
	p := tea.NewProgram(
		NewModel(items, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
