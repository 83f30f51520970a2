package ui

import (
	"tabshell/internal/nav"
	"tabshell/internal/router"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

// Shell is the tab layout: one content slot filled by the router outlet and
// one tab bar bound to the active tab.
//
// The active tab changes in two ways. A committed navigation (including the
// initial location) maps the route to its tab. A tab activation writes the
// tab first and then asks the router to navigate, so the highlight moves
// before the router round-trip; the later route change rewrites the same value.
type Shell struct {
	active      nav.Tab
	router      *router.Router
	unsubscribe func()

	keys   KeyMap
	help   help.Model
	zones  *zone.Manager
	logger *zap.Logger

	width  int
	height int
}

// Ensure Shell implements View.
var _ View = (*Shell)(nil)

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithZones enables mouse hit testing on the tab bar.
func WithZones(z *zone.Manager) ShellOption {
	return func(s *Shell) { s.zones = z }
}

// WithShellLogger sets the logger for tab events.
func WithShellLogger(l *zap.Logger) ShellOption {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(k KeyMap) ShellOption {
	return func(s *Shell) { s.keys = k }
}

// NewShell subscribes to r and syncs the active tab from its current route.
func NewShell(r *router.Router, opts ...ShellOption) *Shell {
	s := &Shell{
		active: nav.DefaultTab,
		router: r,
		keys:   DefaultKeyMap(),
		help:   newHelp(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.unsubscribe = r.Subscribe(s.routeChanged)
	s.routeChanged(r.Current())
	return s
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = Styles.Hint
	h.Styles.FullSeparator = Styles.Hint
	return h
}

// Active returns the highlighted tab.
func (s *Shell) Active() nav.Tab {
	return s.active
}

// Close removes the router subscription.
func (s *Shell) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// routeChanged is the router subscription. The write is unconditional.
func (s *Shell) routeChanged(route nav.Route) {
	s.active = nav.TabForRoute(route)
}

// SelectTab handles a tab activation: the tab is written before navigation
// is requested. The returned command carries the request.
func (s *Shell) SelectTab(tab nav.Tab) tea.Cmd {
	s.logger.Debug("ui: tab selected",
		zap.Stringer("from", s.active),
		zap.Stringer("to", tab))
	s.active = tab
	return s.router.Push(nav.RouteForTab(tab))
}

// tabBar binds a TabBar to the current state. onChange may be nil for rendering.
func (s *Shell) tabBar(onChange func(nav.Tab)) TabBar {
	return TabBar{
		Active:   s.active,
		OnChange: onChange,
		Zones:    s.zones,
	}
}

// Init implements View.
func (s *Shell) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (s *Shell) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case router.NavigateMsg:
		s.router.Commit(msg)
		return s, nil
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.help.Width = msg.Width
		return s, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		s.tabBar(func(t nav.Tab) { cmd = s.SelectTab(t) }).HandleMouse(msg)
		return s, cmd
	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *Shell) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	bar := s.tabBar(func(t nav.Tab) { cmd = s.SelectTab(t) })

	if t, ok := s.keys.TabFor(msg); ok {
		bar.Activate(t)
		return cmd
	}
	switch {
	case key.Matches(msg, s.keys.Next):
		bar.Activate(nav.NextTab(s.active))
		return cmd
	case key.Matches(msg, s.keys.Prev):
		bar.Activate(nav.PrevTab(s.active))
		return cmd
	case key.Matches(msg, s.keys.Back):
		return s.router.Back()
	case key.Matches(msg, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
		return nil
	case key.Matches(msg, s.keys.Quit):
		return tea.Quit
	}
	return nil
}

// View implements View.
func (s *Shell) View() string {
	bar := s.tabBar(nil).View(s.width)
	hints := Styles.Hint.Render(s.help.View(s.keys))

	content := Styles.Content
	if s.width > 0 {
		content = content.Width(s.width)
	}
	if s.height > 0 {
		if h := s.height - lipgloss.Height(bar) - lipgloss.Height(hints); h > 0 {
			content = content.Height(h)
		}
	}
	slot := content.Render(s.router.Outlet().View())
	return lipgloss.JoinVertical(lipgloss.Left, slot, bar, hints)
}

// shellAdapter wraps Shell to implement tea.Model.
type shellAdapter struct {
	*Shell
}

// Ensure shellAdapter can be used with tea.NewProgram.
var _ tea.Model = (*shellAdapter)(nil)

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (s *Shell) AsTeaModel() tea.Model {
	return &shellAdapter{Shell: s}
}

// Update implements tea.Model.
func (a *shellAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := a.Shell.Update(msg)
	return a, cmd
}

// View implements tea.Model. Zone markers are stripped here, once per frame.
func (a *shellAdapter) View() string {
	v := a.Shell.View()
	if a.zones != nil {
		return a.zones.Scan(v)
	}
	return v
}
