package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Reload     key.Binding
	Pause      key.Binding
	CycleTheme key.Binding

	// Filters
	ClearAll       key.Binding
	ToggleLocal    key.Binding
	ToggleWAN      key.Binding
	CycleFlow      key.Binding
	CycleDirection key.Binding

	// Interfaces
	PrevIface    key.Binding
	NextIface    key.Binding
	AllIfaces    key.Binding
	DefaultIface key.Binding

	// Navigation
	Up          key.Binding
	Down        key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding

	// Clipboard
	CopyRow   key.Binding
	CopySrcIP key.Binding

	// Editing
	Confirm key.Binding
	Cancel  key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Pause: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "pause/resume"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),

		ClearAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		ToggleLocal: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("l", "local src"),
		),
		ToggleWAN: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "wan src"),
		),
		CycleFlow: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "flow"),
		),
		CycleDirection: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "direction"),
		),

		PrevIface: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "prev iface"),
		),
		NextIface: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "next iface"),
		),
		AllIfaces: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "all ifaces"),
		),
		DefaultIface: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "wan iface"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("<-", "scroll raw left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("->", "scroll raw right"),
		),

		CopyRow: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "copy row"),
		),
		// Terminals deliver ctrl+i as tab.
		CopySrcIP: key.NewBinding(
			key.WithKeys("tab", "ctrl+i"),
			key.WithHelp("ctrl+i", "copy src ip"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
