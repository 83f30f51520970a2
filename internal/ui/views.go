package ui

import (
	"tabshell/internal/nav"
	"tabshell/internal/router"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Placeholder is a static page: a heading and one line of text.
type Placeholder struct {
	Heading     string
	Description string
}

var _ View = Placeholder{}

// NewMapView returns the Map View page.
func NewMapView() Placeholder {
	return Placeholder{
		Heading:     "Map View",
		Description: "Restaurant map will appear here",
	}
}

// NewAccountView returns the Account page.
func NewAccountView() Placeholder {
	return Placeholder{
		Heading:     "Account",
		Description: "Profile and settings will appear here",
	}
}

// NewSocialFeedView returns the Social Feed page.
func NewSocialFeedView() Placeholder {
	return Placeholder{
		Heading:     "Social Feed",
		Description: "Friends' reviews and recommendations will appear here",
	}
}

// Pages returns the page for every route, for router.New.
func Pages() map[nav.Route]router.Page {
	return map[nav.Route]router.Page{
		nav.RouteMapView:        NewMapView(),
		nav.RouteAccountView:    NewAccountView(),
		nav.RouteSocialFeedView: NewSocialFeedView(),
	}
}

func (p Placeholder) Init() tea.Cmd { return nil }

func (p Placeholder) Update(tea.Msg) (View, tea.Cmd) { return p, nil }

func (p Placeholder) View() string {
	return Styles.Page.Render(lipgloss.JoinVertical(lipgloss.Left,
		Styles.Heading.Render(p.Heading),
		"",
		Styles.Description.Render(p.Description),
	))
}
