// Package ui renders the navigation shell with Bubble Tea.
//
// Pieces:
//   - View: a screen or region with its own Init/Update/View (Elm-style)
//   - TabBar: stateless bottom bar, one control per tab
//   - Shell: owns the active tab, keeps it in sync with the router and hosts
//     the router outlet above the tab bar
//   - Placeholder: static page used for every route
package ui
