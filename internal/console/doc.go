// Package console implements the interactive menu loop.
//
// The loop prints the menu, reads one line, and runs the matching query.
// Bad input and failing tools print a message and the menu comes back; only
// 'q' or the end of input stop it.
package console
