// Package repl provides the interactive shell of stripebench.
//
// The shell holds one list for its lifetime and runs one operation per
// line:
//
//   - repl.go: Main loop and command dispatch
//   - completer.go: Command name completion
//   - history.go: Command history persistence
package repl
