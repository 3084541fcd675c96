// Package viz hosts an orrery in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: the program model; each [TickMsg] steps the frame driver once
//   - [Rasterizer]: draws stars, orbit rings, bodies and the tooltip
//   - [Canvas]: Braille-based pixel canvas with per-cell colour
//   - Light and dark themes, switched by the simulation state
//
// # Key Bindings
//
//	Space     - Pause/Resume the orbits
//	T         - Toggle light/dark theme
//	Tab       - Focus the next speed slider
//	←/→       - Nudge the focused speed
//	E         - Edit the focused speed as text
//	W/A/S/D   - Orbit the camera
//	+/-       - Zoom
//	?         - Show help overlay
//
// # Mouse
//
// Hovering a planet shows its name, orbital radius and current speed.
// Dragging orbits the camera and the wheel zooms.
package viz
