package d2conf_test

import (
	"bytes"
	"testing"

	"github.com/0xalexb/d2conf"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestWithLogLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		level    string
		expected string
	}{
		{name: "debug level", level: "debug", expected: "debug"},
		{name: "warn level", level: "warn", expected: "warn"},
		{name: "empty level", level: "", expected: ""},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var opts d2conf.Options

			d2conf.WithLogLevel(testCase.level)(&opts)

			require.Equal(t, testCase.expected, opts.LogLevel)
		})
	}
}

func TestWithModules(t *testing.T) {
	t.Parallel()

	var opts d2conf.Options

	d2conf.WithModules(fx.Module("test1"))(&opts)
	require.Len(t, opts.Modules, 1)

	d2conf.WithModules(fx.Module("test2"), fx.Module("test3"))(&opts)
	require.Len(t, opts.Modules, 3)
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	var (
		opts   d2conf.Options
		output bytes.Buffer
	)

	for _, apply := range []d2conf.Option{
		d2conf.WithConfigFile("book.toml"),
		d2conf.WithSection("preprocessor:d2"),
		d2conf.WithFormat("toml"),
		d2conf.WithLogFormat("text"),
		d2conf.WithLogOutput(&output),
	} {
		apply(&opts)
	}

	require.Equal(t, "book.toml", opts.ConfigFile)
	require.Equal(t, "preprocessor:d2", opts.Section)
	require.Equal(t, "toml", opts.Format)
	require.Equal(t, "text", opts.LogFormat)
	require.Same(t, &output, opts.LogOutput)
}

func TestOptionsZeroValue(t *testing.T) {
	t.Parallel()

	var opts d2conf.Options

	require.Empty(t, opts.LogLevel)
	require.Empty(t, opts.ConfigFile)
	require.Empty(t, opts.Section)
	require.Nil(t, opts.LogOutput)
}
