package ui

import (
	"testing"

	"tabshell/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabBar_ExactlyOneSelected(t *testing.T) {
	for _, active := range nav.Tabs() {
		controls := TabBar{Active: active}.Controls()
		require.Len(t, controls, 3)

		var selected []nav.Tab
		for _, c := range controls {
			assert.Equal(t, "tab", c.Role)
			if c.Selected {
				selected = append(selected, c.Tab)
			}
		}
		assert.Equal(t, []nav.Tab{active}, selected, "active %s", active)
	}
}

func TestTabBar_LabelsInDisplayOrder(t *testing.T) {
	controls := TabBar{Active: nav.TabMapView}.Controls()
	labels := []string{controls[0].Label, controls[1].Label, controls[2].Label}
	assert.Equal(t, []string{"Social Feed", "Map View", "Account"}, labels)
	assert.Equal(t, "tabbar:SocialFeed", controls[0].ZoneID)
}

func TestTabBar_ActivateCallsOnceWithTab(t *testing.T) {
	var got []nav.Tab
	bar := TabBar{
		Active:   nav.TabMapView,
		OnChange: func(tab nav.Tab) { got = append(got, tab) },
	}
	bar.Activate(nav.TabAccount)
	assert.Equal(t, []nav.Tab{nav.TabAccount}, got)
	assert.Equal(t, nav.TabMapView, bar.Active, "bar holds no state of its own")
}

func TestTabBar_ActivateWithoutCallback(t *testing.T) {
	assert.NotPanics(t, func() { TabBar{}.Activate(nav.TabAccount) })
}

func TestTabBar_HandleMouseWithoutZones(t *testing.T) {
	var called bool
	bar := TabBar{OnChange: func(nav.Tab) { called = true }}
	hit := bar.HandleMouse(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, hit)
	assert.False(t, called)
}

func TestTabBar_View(t *testing.T) {
	out := TabBar{Active: nav.TabAccount}.View(60)
	for _, label := range []string{"Social Feed", "Map View", "Account"} {
		assert.Contains(t, out, label)
	}
}

func TestTabBar_String(t *testing.T) {
	assert.Equal(t,
		`tablist "Main navigation": [tab "Social Feed" selected=true] [tab "Map View" selected=false] [tab "Account" selected=false]`,
		TabBar{Active: nav.TabSocialFeed}.String())
}
