package d2

// Fonts points at the three font files handed to the renderer.
// The table is all-or-nothing: every field is required when it is present.
// Only TrueType files are meaningful to d2, but the extension is not checked.
type Fonts struct {
	Regular string
	Italic  string
	Bold    string
}

// Config is the accepted d2 configuration.
//
// A Config holds only value types and is passed by value, so a holder can
// never observe changes made through another copy. Nothing in this module
// mutates a Config after acceptance.
type Config struct {
	// Path is the d2 binary. A bare name is resolved from PATH by the caller.
	Path string
	// OutputDir is where rendered images are written when Inline is false.
	OutputDir string
	// Layout is the layout engine, e.g. "dagre" or "elk". Absent means the d2 default.
	Layout Optional[string]
	// Inline embeds SVG directly into HTML output instead of linking files.
	Inline    bool
	Fonts     Optional[Fonts]
	Theme     Optional[string]
	DarkTheme Optional[string]
}

// Equal reports whether every field of c and other compares equal.
func (c Config) Equal(other Config) bool {
	return c == other
}
