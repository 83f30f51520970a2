package nav

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRoute is returned by ParseRoute for paths outside the route table.
var ErrUnknownRoute = errors.New("unknown route")

// Route identifies the page the router considers current.
type Route int

const (
	RouteMapView Route = iota
	RouteAccountView
	RouteSocialFeedView

	routeCount
)

// Adding a tab without a route (or the reverse) makes this index out of range
// and fails the build.
var _ = [1]struct{}{}[tabCount-Tab(routeCount)]

// Routes returns every route in declaration order.
func Routes() []Route {
	out := make([]Route, 0, routeCount)
	for r := Route(0); r < routeCount; r++ {
		out = append(out, r)
	}
	return out
}

// Path returns the URL-like location of r.
func (r Route) Path() string {
	switch r {
	case RouteMapView:
		return "/"
	case RouteAccountView:
		return "/account"
	case RouteSocialFeedView:
		return "/social"
	}
	panic(fmt.Sprintf("nav: invalid route %d", int(r)))
}

func (r Route) String() string {
	switch r {
	case RouteMapView:
		return "MapView"
	case RouteAccountView:
		return "AccountView"
	case RouteSocialFeedView:
		return "SocialFeedView"
	default:
		return fmt.Sprintf("Route(%d)", int(r))
	}
}

// Valid reports whether r is one of the known routes.
func (r Route) Valid() bool {
	return r >= 0 && r < routeCount
}

// ParseRoute resolves a location such as "/account" or "social/".
// The empty string is the root.
func ParseRoute(path string) (Route, error) {
	p := "/" + strings.Trim(strings.TrimSpace(path), "/")
	for _, r := range Routes() {
		if r.Path() == p {
			return r, nil
		}
	}
	return 0, fmt.Errorf("parse route %q: %w", path, ErrUnknownRoute)
}

// TabForRoute maps a route to the tab highlighted while it is current.
func TabForRoute(r Route) Tab {
	switch r {
	case RouteMapView:
		return TabMapView
	case RouteAccountView:
		return TabAccount
	case RouteSocialFeedView:
		return TabSocialFeed
	}
	panic(fmt.Sprintf("nav: invalid route %d", int(r)))
}

// RouteForTab maps a tab to the route it navigates to.
func RouteForTab(t Tab) Route {
	switch t {
	case TabMapView:
		return RouteMapView
	case TabAccount:
		return RouteAccountView
	case TabSocialFeed:
		return RouteSocialFeedView
	}
	panic(fmt.Sprintf("nav: invalid tab %d", int(t)))
}
