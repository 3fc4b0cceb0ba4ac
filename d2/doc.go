// Package d2 defines the configuration of the d2 diagram preprocessor.
//
// The configuration document uses hyphenated keys:
//
//	path       = "d2"        # d2 binary, default "d2"
//	output-dir = "d2"        # default "d2"
//	layout     = "elk"       # optional
//	inline     = true        # default true
//	theme      = "1"         # optional
//	dark-theme = "200"       # optional
//
//	[fonts]                  # optional; all three keys required when present
//	regular = "fonts/Regular.ttf"
//	italic  = "fonts/Italic.ttf"
//	bold    = "fonts/Bold.ttf"
//
// An empty document is valid and yields Default(). Keys this package does not
// recognize are ignored, so the table can live next to host-tool keys such
// as mdBook's [preprocessor.d2] command and renderers settings.
//
// Acceptance is pure: no path is checked on disk and the binary is not resolved.
package d2
