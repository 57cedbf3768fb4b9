package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Success string
	Warning string
	Danger  string
	Info    string

	SelectionBg   string
	SelectionText string
	ChipOn        string
	ChipOff       string
}

var themes = []Theme{
	{
		Name:          "Dark",
		Text:          "#F8F8F2",
		Muted:         "#A0A0A0",
		Faint:         "#666666",
		Accent:        "#8BE9FD",
		Success:       "#50FA7B",
		Warning:       "#F1FA8C",
		Danger:        "#FF5555",
		Info:          "#BD93F9",
		SelectionBg:   "#44475A",
		SelectionText: "#F8F8F2",
		ChipOn:        "#50FA7B",
		ChipOff:       "#6272A4",
	},
	{
		Name:          "Light",
		Text:          "#1A1A1A",
		Muted:         "#5A5A5A",
		Faint:         "#9A9A9A",
		Accent:        "#005F87",
		Success:       "#007020",
		Warning:       "#8F5902",
		Danger:        "#A40000",
		Info:          "#5C35CC",
		SelectionBg:   "#D7E4F2",
		SelectionText: "#1A1A1A",
		ChipOn:        "#007020",
		ChipOff:       "#8A8A8A",
	},
}

// GetTheme returns the theme with the given name, defaulting to the first.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, wrapping.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles holds the derived lipgloss styles for a theme.
type Styles struct {
	Title       lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Faint       lipgloss.Style
	Accent      lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Danger      lipgloss.Style
	Info        lipgloss.Style
	Selection   lipgloss.Style
	TableHeader lipgloss.Style
	ChipOn      lipgloss.Style
	ChipOff     lipgloss.Style
}

// Styles derives the lipgloss styles for the theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Faint:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color(t.SelectionBg)).Foreground(lipgloss.Color(t.SelectionText)),
		TableHeader: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)).Bold(true).Underline(true),
		ChipOn:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.ChipOn)).Bold(true),
		ChipOff:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.ChipOff)),
	}
}
