package d2

// DefaultPath is the binary name used when "path" is absent.
func DefaultPath() string {
	return "d2"
}

// DefaultOutputDir is the output directory used when "output-dir" is absent.
func DefaultOutputDir() string {
	return "d2"
}

// DefaultInline is the embedding mode used when "inline" is absent.
func DefaultInline() bool {
	return true
}

// Default returns the configuration accepted from an empty document.
func Default() Config {
	return Config{
		Path:      DefaultPath(),
		OutputDir: DefaultOutputDir(),
		Inline:    DefaultInline(),
	}
}
