// Package environment names deployment environments and carries the active
// one through context, so logging and error reporting can adjust verbosity
// without every package reading env vars itself.
package environment
