package d2

import (
	"github.com/0xalexb/d2conf/config"
	"github.com/0xalexb/d2conf/config/schema"
)

// Document keys.
const (
	KeyPath      = "path"
	KeyOutputDir = "output-dir"
	KeyLayout    = "layout"
	KeyInline    = "inline"
	KeyFonts     = "fonts"
	KeyTheme     = "theme"
	KeyDarkTheme = "dark-theme"

	KeyRegular = "regular"
	KeyItalic  = "italic"
	KeyBold    = "bold"
)

//nolint:gochecknoglobals // immutable field tables.
var (
	fontsSchema = schema.New(KeyFonts,
		requiredPath(KeyRegular, func(f *Fonts) *string { return &f.Regular }),
		requiredPath(KeyItalic, func(f *Fonts) *string { return &f.Italic }),
		requiredPath(KeyBold, func(f *Fonts) *string { return &f.Bold }),
	)

	configSchema = schema.New("",
		schema.Field[Config]{
			Key:     KeyPath,
			Kind:    schema.Path,
			Default: func() any { return DefaultPath() },
			Assign:  func(c *Config, v any) { c.Path = v.(string) },
			Extract: func(c Config) (any, bool) { return c.Path, true },
		},
		schema.Field[Config]{
			Key:     KeyOutputDir,
			Kind:    schema.Path,
			Default: func() any { return DefaultOutputDir() },
			Assign:  func(c *Config, v any) { c.OutputDir = v.(string) },
			Extract: func(c Config) (any, bool) { return c.OutputDir, true },
		},
		optionalString(KeyLayout, func(c *Config) *Optional[string] { return &c.Layout }),
		schema.Field[Config]{
			Key:     KeyInline,
			Kind:    schema.Bool,
			Default: func() any { return DefaultInline() },
			Assign:  func(c *Config, v any) { c.Inline = v.(bool) },
			Extract: func(c Config) (any, bool) { return c.Inline, true },
		},
		schema.Field[Config]{
			Key:  KeyFonts,
			Kind: schema.Table,
			Nested: func(tree map[string]any) (any, error) {
				fonts, err := fontsSchema.Accept(tree)
				if err != nil {
					return nil, err
				}

				return fonts, nil
			},
			Assign: func(c *Config, v any) { c.Fonts = Some(v.(Fonts)) },
			Extract: func(c Config) (any, bool) {
				fonts, ok := c.Fonts.Get()
				if !ok {
					return nil, false
				}

				return fontsSchema.Tree(fonts), true
			},
		},
		optionalString(KeyTheme, func(c *Config) *Optional[string] { return &c.Theme }),
		optionalString(KeyDarkTheme, func(c *Config) *Optional[string] { return &c.DarkTheme }),
	)
)

func requiredPath(key string, field func(*Fonts) *string) schema.Field[Fonts] {
	return schema.Field[Fonts]{
		Key:      key,
		Kind:     schema.Path,
		Required: true,
		Assign:   func(f *Fonts, v any) { *field(f) = v.(string) },
		Extract:  func(f Fonts) (any, bool) { return *field(&f), true },
	}
}

func optionalString(key string, field func(*Config) *Optional[string]) schema.Field[Config] {
	return schema.Field[Config]{
		Key:    key,
		Kind:   schema.String,
		Assign: func(c *Config, v any) { *field(c) = Some(v.(string)) },
		Extract: func(c Config) (any, bool) {
			value, ok := field(&c).Get()

			return value, ok
		},
	}
}

// Keys returns the recognized top-level document keys in schema order.
func Keys() []string {
	return configSchema.Keys()
}

// Accept builds a Config from a generic document tree. Absent fields take their
// defaults, unknown keys are ignored, and a present fonts table must be complete.
func Accept(tree map[string]any) (Config, error) {
	return configSchema.Accept(tree)
}

// Acceptor returns Accept as a config.Acceptor for use with config.Provider.
func Acceptor() config.Acceptor[Config] {
	return config.AcceptorFunc[Config](Accept)
}
