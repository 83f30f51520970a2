package ui

import (
	"strings"

	"tabshell/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	tabRole       = "tab"
	tabListLabel  = "Main navigation"
	zoneTabPrefix = "tabbar:"
)

// TabControl describes one control of the tab bar.
type TabControl struct {
	Tab      nav.Tab
	Label    string
	Role     string // always "tab"
	Selected bool
	ZoneID   string
}

// makeTabZoneID returns the bubblezone ID of a tab control.
func makeTabZoneID(t nav.Tab) string {
	return zoneTabPrefix + t.String()
}

// TabBar is a pure function of the active tab. OnChange is invoked once per
// activation with the activated tab. Zones is optional; without it the bar
// cannot resolve mouse clicks.
type TabBar struct {
	Active   nav.Tab
	OnChange func(nav.Tab)
	Zones    *zone.Manager
}

// Controls returns the controls in display order. Exactly one is selected.
func (b TabBar) Controls() []TabControl {
	tabs := nav.Tabs()
	out := make([]TabControl, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, TabControl{
			Tab:      t,
			Label:    t.Label(),
			Role:     tabRole,
			Selected: t == b.Active,
			ZoneID:   makeTabZoneID(t),
		})
	}
	return out
}

// Activate invokes OnChange with t.
func (b TabBar) Activate(t nav.Tab) {
	if b.OnChange != nil {
		b.OnChange(t)
	}
}

// HandleMouse activates the control under a left-button release.
// Returns true if a control was hit.
func (b TabBar) HandleMouse(msg tea.MouseMsg) bool {
	if b.Zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return false
	}
	for _, c := range b.Controls() {
		if z := b.Zones.Get(c.ZoneID); z != nil && z.InBounds(msg) {
			b.Activate(c.Tab)
			return true
		}
	}
	return false
}

// View renders the bar at width (0 = natural width).
func (b TabBar) View(width int) string {
	controls := b.Controls()
	cells := make([]string, 0, len(controls))
	for _, c := range controls {
		style := Styles.Tab
		if c.Selected {
			style = Styles.TabActive
		}
		cell := style.Render(c.Label)
		if b.Zones != nil {
			cell = b.Zones.Mark(c.ZoneID, cell)
		}
		cells = append(cells, cell)
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
	style := Styles.TabBar
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(bar)
}

// String describes the bar the way an accessibility tree would, e.g.
// `tablist "Main navigation": [tab "Social Feed" selected=false] ...`.
func (b TabBar) String() string {
	var sb strings.Builder
	sb.WriteString(`tablist "` + tabListLabel + `":`)
	for _, c := range b.Controls() {
		sb.WriteString(" [" + c.Role + ` "` + c.Label + `" selected=`)
		if c.Selected {
			sb.WriteString("true]")
		} else {
			sb.WriteString("false]")
		}
	}
	return sb.String()
}
