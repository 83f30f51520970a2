package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteTabRoundTrip(t *testing.T) {
	for _, r := range Routes() {
		assert.Equal(t, r, RouteForTab(TabForRoute(r)), "route %s", r)
	}
	for _, tab := range Tabs() {
		assert.Equal(t, tab, TabForRoute(RouteForTab(tab)), "tab %s", tab)
	}
}

func TestRoutes_CoverEveryVariant(t *testing.T) {
	routes := Routes()
	assert.Len(t, routes, int(routeCount))
	assert.Equal(t, []Route{RouteMapView, RouteAccountView, RouteSocialFeedView}, routes)
	for i, r := range routes {
		assert.True(t, r.Valid())
		assert.Equal(t, Route(i), r)
	}
}

func TestTabForRoute(t *testing.T) {
	tests := []struct {
		route Route
		want  Tab
	}{
		{RouteMapView, TabMapView},
		{RouteAccountView, TabAccount},
		{RouteSocialFeedView, TabSocialFeed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TabForRoute(tt.route))
	}
}

func TestParseRoute(t *testing.T) {
	tests := []struct {
		in   string
		want Route
	}{
		{"", RouteMapView},
		{"/", RouteMapView},
		{"/account", RouteAccountView},
		{"account", RouteAccountView},
		{"/account/", RouteAccountView},
		{"/social", RouteSocialFeedView},
		{" social ", RouteSocialFeedView},
	}
	for _, tt := range tests {
		got, err := ParseRoute(tt.in)
		require.NoError(t, err, "ParseRoute(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseRoute(%q)", tt.in)
	}
}

func TestParseRoute_Unknown(t *testing.T) {
	for _, in := range []string{"/map", "/account/settings", "feed"} {
		_, err := ParseRoute(in)
		require.ErrorIs(t, err, ErrUnknownRoute, "ParseRoute(%q)", in)
	}
}

func TestRoutePathsParseBack(t *testing.T) {
	for _, r := range Routes() {
		got, err := ParseRoute(r.Path())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestInvalidValuesPanic(t *testing.T) {
	assert.Panics(t, func() { TabForRoute(Route(7)) })
	assert.Panics(t, func() { RouteForTab(Tab(-1)) })
	assert.False(t, Route(7).Valid())
	assert.False(t, Tab(3).Valid())
	assert.Equal(t, "Route(7)", Route(7).String())
}
