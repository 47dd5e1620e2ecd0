// Package query implements the read-only host queries behind each menu option.
//
// Every query shells out to a standard system tool and returns the tool's
// output untouched. Failures come back as ErrTool errors carrying a short
// per-kind message, so the console can print them and keep running.
package query
