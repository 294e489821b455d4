// Package viz provides the terminal side of contrastviz.
//
//   - [Preview]: Bubble Tea model that scrubs through an alignment sweep
//   - [Canvas]: Braille-based pixel canvas used by the preview panels
//   - [Banner] and [Summary]: styled run output with a convergence plot
//
// # Key Bindings
//
//	Space       - Play/Pause
//	Left/Right  - Previous/next step
//	Home/End    - First/last step
//	T           - Cycle color themes
//	?           - Show help
//	Q           - Quit
package viz
