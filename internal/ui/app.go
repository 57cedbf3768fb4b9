// Package ui provides the Bubble Tea terminal interface for ufwtail.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ufwtail/ufwtail/internal/filter"
	"github.com/ufwtail/ufwtail/internal/prefs"
	"github.com/ufwtail/ufwtail/internal/source"
)

// statusLifetime is how long a transient status message stays visible.
const statusLifetime = 5 * time.Second

// Options configures the UI.
type Options struct {
	Context   context.Context
	Source    *source.Source
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	src       *source.Source
	pollTick  time.Duration
	prefsPath string

	theme  Theme
	styles Styles
	keys   keyMap

	width  int
	height int
	ready  bool

	editing   bool
	editField filter.Field
	input     textinput.Model

	rawScroll int

	status   string
	statusAt time.Time
}

type tickMsg time.Time

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = source.DefaultPollInterval
	}

	theme := GetTheme(opts.ThemeName)

	input := textinput.New()
	input.CharLimit = 128
	input.Prompt = ""

	return Model{
		src:       opts.Source,
		pollTick:  pollTick,
		prefsPath: opts.PrefsPath,
		theme:     theme,
		styles:    theme.Styles(),
		keys:      defaultKeyMap(),
		input:     input,
	}
}

// Run starts the UI and blocks until quit or context cancellation.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.pollTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.src.MaybeReload(time.Time(msg))
		if m.status != "" && time.Time(msg).Sub(m.statusAt) >= statusLifetime {
			m.status = ""
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	if field, shift, ok := fieldFromKey(msg.String()); ok {
		if shift {
			count := m.src.ClearFilter(field)
			m.setStatus(fmt.Sprintf("Cleared %s filter. Matching rows: %d", field.Label(), count))
			return m, nil
		}
		m.editing = true
		m.editField = field
		m.input.SetValue(m.src.Filter().Criteria.Value(field))
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reload):
		if m.src.Reload() {
			m.setStatus(fmt.Sprintf("Reloaded. Matching rows: %d", len(m.src.Visible())))
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.src.TogglePause()
		if m.src.Paused() {
			m.setStatus("Updates paused")
		} else {
			m.setStatus(fmt.Sprintf("Live updates resumed. Matching rows: %d", len(m.src.Visible())))
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil

	case key.Matches(msg, m.keys.ClearAll):
		m.src.ClearAllFilters()
		m.setStatus(fmt.Sprintf(
			"Cleared filters (local src hidden, wan src shown, flow all, dir in+out, interface: %s)",
			ifaceLabel(m.src.Filter().Interface)))
		return m, nil

	case key.Matches(msg, m.keys.ToggleLocal):
		count := m.src.ToggleLocal()
		if m.src.Filter().ShowLocalSrc {
			m.setStatus(fmt.Sprintf("Showing local source IP rows. Matching rows: %d", count))
		} else {
			m.setStatus(fmt.Sprintf("Hiding local source IP rows. Matching rows: %d", count))
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleWAN):
		count := m.src.ToggleWAN()
		if m.src.Filter().ShowWANSrc {
			m.setStatus(fmt.Sprintf("Showing WAN source IP rows. Matching rows: %d", count))
		} else {
			m.setStatus(fmt.Sprintf("Hiding WAN source IP rows. Matching rows: %d", count))
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleFlow):
		count := m.src.CycleFlow()
		m.setStatus(fmt.Sprintf("Flow filter: %s. Matching rows: %d", m.src.Filter().Flow.Label(), count))
		return m, nil

	case key.Matches(msg, m.keys.CycleDirection):
		count := m.src.CycleDirection()
		m.setStatus(fmt.Sprintf("Direction filter: %s. Matching rows: %d", m.src.Filter().Direction.Label(), count))
		return m, nil

	case key.Matches(msg, m.keys.PrevIface):
		count := m.src.CycleInterface(false)
		m.setStatus(fmt.Sprintf("Interface: %s. Matching rows: %d", ifaceLabel(m.src.Filter().Interface), count))
		return m, nil

	case key.Matches(msg, m.keys.NextIface):
		count := m.src.CycleInterface(true)
		m.setStatus(fmt.Sprintf("Interface: %s. Matching rows: %d", ifaceLabel(m.src.Filter().Interface), count))
		return m, nil

	case key.Matches(msg, m.keys.AllIfaces):
		count := m.src.SelectInterface("")
		m.setStatus(fmt.Sprintf("Interface: all. Matching rows: %d", count))
		return m, nil

	case key.Matches(msg, m.keys.DefaultIface):
		count := m.src.SelectDefaultWAN()
		m.setStatus(fmt.Sprintf("Interface: %s. Matching rows: %d", ifaceLabel(m.src.Filter().Interface), count))
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.src.MoveSelection(-1)
		m.rawScroll = 0
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.src.MoveSelection(1)
		m.rawScroll = 0
		return m, nil

	case key.Matches(msg, m.keys.ScrollLeft):
		m.rawScroll = max(0, m.rawScroll-rawScrollStep)
		return m, nil

	case key.Matches(msg, m.keys.ScrollRight):
		m.rawScroll = min(m.rawScroll+rawScrollStep, m.maxRawScroll())
		return m, nil

	case key.Matches(msg, m.keys.CopyRow):
		m.copySelectedRow()
		return m, nil

	case key.Matches(msg, m.keys.CopySrcIP):
		m.copySelectedSrcIP()
		return m, nil
	}

	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		count := m.src.SetFilter(m.editField, m.input.Value())
		m.editing = false
		m.input.Blur()
		m.rawScroll = 0
		m.setStatus(fmt.Sprintf("Set %s filter. Matching rows: %d", m.editField.Label(), count))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) copySelectedRow() {
	entry, ok := m.src.SelectedEntry()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(entry.Raw); err != nil {
		m.setStatus(fmt.Sprintf("Clipboard copy failed: %v", err))
		return
	}
	m.setStatus("Copied selected log entry")
}

func (m *Model) copySelectedSrcIP() {
	entry, ok := m.src.SelectedEntry()
	if !ok {
		return
	}
	if entry.SrcIP == "" {
		m.setStatus("No source IP on selected row")
		return
	}
	if err := clipboard.WriteAll(entry.SrcIP); err != nil {
		m.setStatus(fmt.Sprintf("Source IP copy failed: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("Copied source IP: %s", entry.SrcIP))
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.statusAt = time.Now()
}

// fieldFromKey maps F1..F6 to the six filter criteria; shift clears instead
// of editing.
func fieldFromKey(k string) (filter.Field, bool, bool) {
	fields := map[string]filter.Field{
		"f1": filter.FieldService,
		"f2": filter.FieldPort,
		"f3": filter.FieldIP,
		"f4": filter.FieldAction,
		"f5": filter.FieldProto,
		"f6": filter.FieldText,
	}
	if field, ok := fields[k]; ok {
		return field, false, true
	}
	const shiftPrefix = "shift+"
	if len(k) > len(shiftPrefix) && k[:len(shiftPrefix)] == shiftPrefix {
		if field, ok := fields[k[len(shiftPrefix):]]; ok {
			return field, true, true
		}
	}
	return 0, false, false
}

func ifaceLabel(name string) string {
	if name == "" {
		return "all"
	}
	return name
}
