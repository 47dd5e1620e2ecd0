// Package cli implements the raspimon command-line interface.
//
// # Command Structure
//
// The root command runs the interactive console; the subcommands are
// one-shot helpers around it:
//
//	raspimon             - Menu console (a..g, h for help, q to exit)
//	raspimon monitor     - Live full-screen dashboard (bubbletea)
//	raspimon doctor      - Check that each option's tool is installed
//	raspimon init        - Write the default config file
//	raspimon version     - Print build information
//	raspimon completion  - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command and
// available to all subcommands. Without --config the console looks for
// ./.raspimon.yaml, then ~/.config/raspimon/config.yaml, and runs on
// built-in defaults when neither exists.
//
// # Exit Codes
//
// Leaving the console with 'q' or end of input exits 0. Config errors exit
// 1. doctor returns an ExitError(1) when a required tool is missing, which
// Execute turns into the process exit code without printing anything more.
package cli
