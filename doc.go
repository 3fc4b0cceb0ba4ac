// Package d2conf wires the d2 configuration into an Fx application.
//
// NewApp reads one configuration document (WithConfigFile), optionally
// selecting a section of a larger file (WithSection), and provides the
// accepted d2.Config to the modules passed with WithModules. LoadConfig is the
// one-shot form used by the d2conf command.
package d2conf
