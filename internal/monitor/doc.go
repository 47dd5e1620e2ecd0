// Package monitor implements the live full-screen dashboard for the board
// raspimon runs on.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: holds the latest metrics, history, theme and selected widget
//   - Update: processes keystrokes, window resizes, ticks and new metrics
//   - View: renders the current state to a string for display
//
// # Key Components
//
//	Model     - The Bubble Tea model containing all dashboard state
//	Collector - Gathers one sample through gopsutil and vcgencmd
//	History   - Ring buffers of past samples for the sparklines
//	Theme     - The dark, light and solar palettes
//
// # Message Flow
//
//  1. tickMsg fires at the configured interval (default 1s)
//  2. collectCmd takes a sample in the background
//  3. metricsMsg arrives with the sample, which is pushed into History
//  4. View re-renders the dashboard
//
// Network and SD card throughput are computed from the counter deltas between
// two samples, divided by the time between them.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C  - Quit
//	→/l, ←/h   - Select the next or previous widget
//	t          - Cycle theme
//	r          - Sample now
//	?          - Toggle the full key list
package monitor
