package ui

import (
	"tabshell/internal/nav"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the shell bindings and implements help.KeyMap.
// Number keys follow the tab bar's left-to-right order.
type KeyMap struct {
	SocialFeed key.Binding
	MapView    key.Binding
	Account    key.Binding
	Next       key.Binding
	Prev       key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SocialFeed: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", nav.TabSocialFeed.Label()),
		),
		MapView: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", nav.TabMapView.Label()),
		),
		Account: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", nav.TabAccount.Label()),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab/→", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab/←", "prev tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TabFor returns the tab a direct-selection key points at.
func (k KeyMap) TabFor(msg tea.KeyMsg) (nav.Tab, bool) {
	switch {
	case key.Matches(msg, k.SocialFeed):
		return nav.TabSocialFeed, true
	case key.Matches(msg, k.MapView):
		return nav.TabMapView, true
	case key.Matches(msg, k.Account):
		return nav.TabAccount, true
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SocialFeed, k.MapView, k.Account},
		{k.Next, k.Prev, k.Back},
		{k.Help, k.Quit},
	}
}
