// Package router tracks the current route, resolves it to a page and tells
// subscribers when the location changes.
//
// Navigation is two-phase so it fits the Bubble Tea event loop: Push and Back
// return a tea.Cmd producing a NavigateMsg, and the owner of the loop hands
// that message to Commit from its Update. All state changes and subscriber
// calls therefore happen on the event-loop goroutine.
package router

import (
	"context"
	"errors"
	"fmt"

	"tabshell/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// DefaultHistoryLimit bounds the back stack.
const DefaultHistoryLimit = 50

// ErrMissingPage is returned by New when a route has no page registered.
var ErrMissingPage = errors.New("no page registered for route")

// Page is whatever the outlet renders for a route.
type Page interface {
	View() string
}

// NavigateMsg asks the router to move to Route. Back marks a history pop.
type NavigateMsg struct {
	Route nav.Route
	Back  bool
}

type subscriber struct {
	id int
	fn func(nav.Route)
}

// Router owns the current location.
type Router struct {
	current      nav.Route
	pages        map[nav.Route]Page
	history      []nav.Route
	historyLimit int
	subs         []subscriber
	nextID       int

	logger *zap.Logger
	tracer trace.Tracer
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for navigation events.
func WithLogger(l *zap.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTracer sets the tracer used for router.navigate spans.
func WithTracer(t trace.Tracer) Option {
	return func(r *Router) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithHistoryLimit caps the number of entries kept for Back. Values below 1 disable history.
func WithHistoryLimit(n int) Option {
	return func(r *Router) {
		r.historyLimit = n
	}
}

// New creates a router positioned at initial. Every route must have a page.
func New(initial nav.Route, pages map[nav.Route]Page, opts ...Option) (*Router, error) {
	if !initial.Valid() {
		return nil, fmt.Errorf("router: initial route %s: %w", initial, nav.ErrUnknownRoute)
	}
	r := &Router{
		current:      initial,
		pages:        make(map[nav.Route]Page, len(pages)),
		historyLimit: DefaultHistoryLimit,
		logger:       zap.NewNop(),
		tracer:       noop.NewTracerProvider().Tracer("tabshell/router"),
	}
	for _, route := range nav.Routes() {
		p, ok := pages[route]
		if !ok || p == nil {
			return nil, fmt.Errorf("router: %s (%s): %w", route, route.Path(), ErrMissingPage)
		}
		r.pages[route] = p
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Current returns the current route.
func (r *Router) Current() nav.Route {
	return r.current
}

// Outlet returns the page for the current route.
func (r *Router) Outlet() Page {
	return r.pages[r.current]
}

// History returns the back stack, oldest first.
func (r *Router) History() []nav.Route {
	out := make([]nav.Route, len(r.history))
	copy(out, r.history)
	return out
}

// Subscribe registers fn to be called after every committed navigation.
// The returned func removes the subscription; it may be called from inside
// a notification, and the other subscribers of that commit are still called
// exactly once.
func (r *Router) Subscribe(fn func(nav.Route)) (unsubscribe func()) {
	id := r.nextID
	r.nextID++
	r.subs = append(r.subs, subscriber{id: id, fn: fn})
	return func() {
		kept := make([]subscriber, 0, len(r.subs))
		for _, s := range r.subs {
			if s.id != id {
				kept = append(kept, s)
			}
		}
		r.subs = kept
	}
}

// Push requests navigation to route. The location changes when the
// resulting NavigateMsg is committed.
func (r *Router) Push(route nav.Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

// Back requests navigation to the previous location. It returns nil when
// there is nothing to go back to.
func (r *Router) Back() tea.Cmd {
	if len(r.history) == 0 {
		return nil
	}
	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return func() tea.Msg {
		return NavigateMsg{Route: prev, Back: true}
	}
}

// Commit applies a navigation and notifies subscribers. It must be called
// from the event loop.
func (r *Router) Commit(msg NavigateMsg) {
	if !msg.Route.Valid() {
		r.logger.Warn("router: dropping navigation to invalid route", zap.Int("route", int(msg.Route)))
		return
	}
	from := r.current
	_, span := r.tracer.Start(context.Background(), "router.navigate",
		trace.WithAttributes(
			attribute.String("from", from.Path()),
			attribute.String("to", msg.Route.Path()),
			attribute.Bool("back", msg.Back),
		))
	defer span.End()

	if !msg.Back && msg.Route != from {
		r.remember(from)
	}
	r.current = msg.Route
	r.logger.Debug("router: navigate",
		zap.String("from", from.Path()),
		zap.String("to", msg.Route.Path()),
		zap.Bool("back", msg.Back))

	subs := append([]subscriber(nil), r.subs...)
	for _, s := range subs {
		s.fn(r.current)
	}
}

func (r *Router) remember(route nav.Route) {
	if r.historyLimit < 1 {
		return
	}
	r.history = append(r.history, route)
	if over := len(r.history) - r.historyLimit; over > 0 {
		r.history = r.history[over:]
	}
}
