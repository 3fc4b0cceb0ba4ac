// Package logging builds the structured slog logger shared by the CLI and the Fx container.
// Output is JSON by default; the text format is meant for interactive terminals.
package logging
