package ui

import (
	"fmt"
	"strings"

	"github.com/ufwtail/ufwtail/internal/filter"
	"github.com/ufwtail/ufwtail/internal/ufwlog"
)

// Fixed chrome: header, toggles, filters, table header, detail, status,
// footer.
const chromeLines = 7

// showDateWidth is the width at which timestamps include the date, and
// showDescriptionWidth the width at which service descriptions appear.
const (
	showDateWidth        = 130
	showDescriptionWidth = 150
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderToggles())
	b.WriteByte('\n')
	b.WriteString(m.renderCriteria())
	b.WriteByte('\n')
	b.WriteString(m.renderTable())
	b.WriteString(m.renderDetail())
	b.WriteByte('\n')
	b.WriteString(m.renderStatus())
	b.WriteByte('\n')
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	pause := "[live]"
	pauseStyle := m.styles.Success
	if m.src.Paused() {
		pause = "[paused]"
		pauseStyle = m.styles.Warning
	}

	visible := m.src.Visible()
	counts := fmt.Sprintf("%d/%d rows", len(visible), len(m.src.Entries()))

	return m.styles.Title.Render("UFW Log Viewer") + " " +
		pauseStyle.Render(pause) + "  " +
		m.styles.Muted.Render(m.src.Path()) + "  " +
		m.styles.Faint.Render(counts)
}

func (m Model) renderToggles() string {
	state := m.src.Filter()

	chip := func(label string, on bool) string {
		if on {
			return m.styles.ChipOn.Render(label)
		}
		return m.styles.ChipOff.Render(label)
	}

	parts := []string{
		chip("[local]", state.ShowLocalSrc),
		chip("[wan]", state.ShowWANSrc),
		m.styles.Accent.Render("[flow: " + state.Flow.Label() + "]"),
		m.styles.Accent.Render("[dir: " + state.Direction.Label() + "]"),
	}

	parts = append(parts, m.styles.Faint.Render(" iface:"))
	if state.Interface == "" {
		parts = append(parts, m.styles.ChipOn.Render("[all]"))
	} else {
		parts = append(parts, m.styles.ChipOff.Render("all"))
	}
	ifaces := m.src.Interfaces()
	shown := maxVisibleIfaces(m.width)
	for i, name := range ifaces {
		if i >= shown {
			parts = append(parts, m.styles.Faint.Render(fmt.Sprintf("+%d", len(ifaces)-shown)))
			break
		}
		if name == state.Interface {
			parts = append(parts, m.styles.ChipOn.Render("["+name+"]"))
		} else {
			parts = append(parts, m.styles.ChipOff.Render(name))
		}
	}

	return strings.Join(parts, " ")
}

func maxVisibleIfaces(width int) int {
	switch {
	case width >= 160:
		return 8
	case width >= 120:
		return 6
	default:
		return 4
	}
}

func (m Model) renderCriteria() string {
	criteria := m.src.Filter().Criteria
	parts := make([]string, 0, 6)
	for _, field := range filter.Fields() {
		value := criteria.Value(field)
		label := field.Label() + ":"
		if value == "" {
			parts = append(parts, m.styles.Faint.Render(label+"*"))
		} else {
			parts = append(parts, m.styles.Warning.Render(label+value))
		}
	}
	line := strings.Join(parts, "  ")
	hint := "  " + m.styles.Faint.Render("(F1-F6 edit, shift clears)")
	return line + hint
}

type column struct {
	label string
	width int
}

func (m Model) columns() []column {
	showDate := m.width >= showDateWidth
	timeWidth := 9
	if showDate {
		timeWidth = 16
	}
	endpoint := 21
	return []column{
		{"TIME", timeWidth},
		{"ACTION", 7},
		{"DIR", 3},
		{"IFACE", 10},
		{"SOURCE", endpoint},
		{"DEST", endpoint},
		{"PROTO", 5},
		{"SERVICE", 0}, // remainder
	}
}

func (m Model) tableHeight() int {
	h := m.height - chromeLines
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) renderTable() string {
	entries := m.src.Entries()
	visible := m.src.Visible()
	selected := m.src.Selection()
	height := m.tableHeight()
	columns := m.columns()
	showDate := m.width >= showDateWidth
	showDescription := m.width >= showDescriptionWidth

	var b strings.Builder

	header := make([]string, len(columns))
	for i, col := range columns {
		w := col.width
		if w == 0 {
			w = len(col.label)
		}
		header[i] = padTo(col.label, w)
	}
	b.WriteString(m.styles.TableHeader.Render(strings.Join(header, " ")))
	b.WriteByte('\n')

	offset := tableOffset(selected, len(visible), height)
	for row := 0; row < height; row++ {
		pos := offset + row
		if pos < len(visible) {
			entry := entries[visible[pos]]
			line := m.renderRow(entry, columns, showDate, showDescription)
			if pos == selected {
				line = m.styles.Selection.Render(line)
			}
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderRow(entry ufwlog.Entry, columns []column, showDate, showDescription bool) string {
	iface := ufwlog.IfaceOrEmpty(entry.InIface)
	if iface == "" {
		iface = ufwlog.IfaceOrEmpty(entry.OutIface)
	}
	proto := entry.Proto
	if proto == "" {
		proto = "-"
	}

	cells := []string{
		formatTimestamp(entry.Timestamp, showDate),
		entry.Action,
		entry.Direction().String(),
		iface,
		endpointDisplay(entry.SrcIP, entry.SrcPort),
		endpointDisplay(entry.DstIP, entry.DstPort),
		proto,
		serviceDisplay(entry, showDescription),
	}

	used := 0
	parts := make([]string, len(columns))
	for i, col := range columns {
		w := col.width
		if w == 0 {
			w = m.width - used - len(columns) + 1
			if w < 8 {
				w = 8
			}
		}
		parts[i] = padTo(cells[i], w)
		used += w
	}
	return strings.Join(parts, " ")
}

// tableOffset keeps the selection inside the viewport.
func tableOffset(selected, total, height int) int {
	if total <= height {
		return 0
	}
	offset := selected - height/2
	if offset < 0 {
		offset = 0
	}
	if offset > total-height {
		offset = total - height
	}
	return offset
}

func (m Model) renderDetail() string {
	entry, ok := m.src.SelectedEntry()
	if !ok {
		return m.styles.Faint.Render("—")
	}
	line := sliceFrom(entry.Raw, m.rawScroll)
	return m.styles.Muted.Render(padTo(line, m.width))
}

func (m *Model) maxRawScroll() int {
	entry, ok := m.src.SelectedEntry()
	if !ok {
		return 0
	}
	n := len([]rune(entry.Raw))
	if n == 0 {
		return 0
	}
	return n - 1
}

func (m Model) renderStatus() string {
	if m.editing {
		label := m.editField.Label() + " filter: "
		return m.styles.Accent.Render(label) + m.input.View()
	}
	if err := m.src.Err(); err != nil {
		return m.styles.Danger.Render(fmt.Sprintf("Failed to read log: %v", err))
	}
	if m.status != "" {
		return m.styles.Info.Render(m.status)
	}
	if len(m.src.Entries()) > 0 && len(m.src.Visible()) == 0 {
		return m.styles.Warning.Render("No rows match the current filters")
	}
	return ""
}

func (m Model) renderFooter() string {
	parts := []string{
		"q quit", "r reload", "a pause", "c clear",
		"l local", "p wan", "f flow", "d dir",
		"F1-F6 edit", ",/. iface", "0 all", "w wan-if",
		"ctrl+c copy", "ctrl+i copy ip",
	}
	return m.styles.Faint.Render(strings.Join(parts, " | "))
}
