package d2conf

import (
	"io"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules    []fx.Option
	LogLevel   string
	LogFormat  string
	LogOutput  io.Writer
	ConfigFile string
	Section    string
	Format     string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile sets the document the d2 configuration is accepted from.
// Without it no d2.Config is provided to the container.
func WithConfigFile(path string) Option {
	return func(opts *Options) {
		opts.ConfigFile = path
	}
}

// WithSection selects the table holding the d2 settings, e.g. "preprocessor:d2" for book.toml.
// Empty means the document root.
func WithSection(section string) Option {
	return func(opts *Options) {
		opts.Section = section
	}
}

// WithFormat forces the document format ("toml", "yaml" or "json").
// If not set, the format is detected from the file extension.
func WithFormat(format string) Option {
	return func(opts *Options) {
		opts.Format = format
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects log output. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
