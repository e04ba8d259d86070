// Package preview shows the charts in the terminal.
//
//   - [Bars]: colored horizontal bars, one group per actor
//   - [Profile]: asciigraph line per category across actors
//   - [Outline]: the slide as indented text
//   - [Run]: Bubble Tea viewer cycling through the three views
//
// # Key Bindings
//
//	Tab, →, l        - Next view
//	Shift+Tab, ←, h  - Previous view
//	q, Ctrl+C        - Quit
package preview
