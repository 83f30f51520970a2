// Package nav defines the closed sets of tabs and routes and the one-to-one
// correspondence between them.
package nav

import "fmt"

// Tab identifies which of the main sections is highlighted in the tab bar.
type Tab int

const (
	TabMapView Tab = iota
	TabAccount
	TabSocialFeed

	tabCount
)

// DefaultTab is active before the first route sync.
const DefaultTab = TabMapView

// displayOrder is the left-to-right order of the tab bar.
var displayOrder = [tabCount]Tab{TabSocialFeed, TabMapView, TabAccount}

// Tabs returns all tabs in display order.
func Tabs() []Tab {
	out := make([]Tab, len(displayOrder))
	copy(out, displayOrder[:])
	return out
}

// Label returns the fixed control label.
func (t Tab) Label() string {
	switch t {
	case TabMapView:
		return "Map View"
	case TabAccount:
		return "Account"
	case TabSocialFeed:
		return "Social Feed"
	}
	panic(fmt.Sprintf("nav: invalid tab %d", int(t)))
}

func (t Tab) String() string {
	switch t {
	case TabMapView:
		return "MapView"
	case TabAccount:
		return "Account"
	case TabSocialFeed:
		return "SocialFeed"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

// Valid reports whether t is one of the known tabs.
func (t Tab) Valid() bool {
	return t >= 0 && t < tabCount
}

// NextTab returns the tab to the right of t, wrapping around.
func NextTab(t Tab) Tab {
	return displayOrder[(position(t)+1)%len(displayOrder)]
}

// PrevTab returns the tab to the left of t, wrapping around.
func PrevTab(t Tab) Tab {
	idx := position(t) - 1
	if idx < 0 {
		idx = len(displayOrder) - 1
	}
	return displayOrder[idx]
}

func position(t Tab) int {
	for i, o := range displayOrder {
		if o == t {
			return i
		}
	}
	panic(fmt.Sprintf("nav: invalid tab %d", int(t)))
}
