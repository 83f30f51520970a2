package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - headings
	ColorHighlight = "205" // Magenta - active tab
	ColorMuted     = "241" // Gray - descriptions, hints, inactive tabs
	ColorBorder    = "238" // Dark gray - tab bar rule
)

// Styles contains shared style definitions.
var Styles = struct {
	Heading     lipgloss.Style // Page heading
	Description lipgloss.Style // Page body line
	Page        lipgloss.Style // Placeholder page container
	Content     lipgloss.Style // Outlet area above the tab bar

	TabBar    lipgloss.Style // Bar container, rule on top
	Tab       lipgloss.Style // Inactive control
	TabActive lipgloss.Style // Active control
	Hint      lipgloss.Style // Help line
}{
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Description: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Page: lipgloss.NewStyle().
		Padding(1, 2),
	Content: lipgloss.NewStyle(),
	TabBar: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Align(lipgloss.Center),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true).
		Padding(0, 2),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
