// Package viz provides terminal-based visualization for simulation runs.
//
// The package implements a live view using the Bubble Tea framework:
//
//   - [Model]: live view stepping a simulator and rendering the fluid
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	S     - Advance a single step while paused
//	R     - Rebuild the scene and start over
//	Q     - Quit
//
// A sparkline of mean density runs alongside the particle field so density
// drift is visible while the fluid moves.
package viz
