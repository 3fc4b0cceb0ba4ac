package toml

import (
	"testing"

	"github.com/0xalexb/d2conf/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_EmptyPath(t *testing.T) {
	t.Parallel()

	data := []byte(`
path = "/usr/bin/d2"
inline = false
`)

	tree, err := NewParser().Parse(data, "")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"path": "/usr/bin/d2", "inline": false}, tree)
}

func TestParser_Parse_Section(t *testing.T) {
	t.Parallel()

	data := []byte(`
[book]
title = "Handbook"

[preprocessor.d2]
layout = "elk"

[preprocessor.d2.fonts]
regular = "r.ttf"
italic = "i.ttf"
bold = "b.ttf"
`)

	tree, err := NewParser().Parse(data, "preprocessor:d2")

	require.NoError(t, err)
	assert.Equal(t, "elk", tree["layout"])
	assert.Equal(t, map[string]any{"regular": "r.ttf", "italic": "i.ttf", "bold": "b.ttf"}, tree["fonts"])
	assert.NotContains(t, tree, "title")
}

func TestParser_Parse_InlineTable(t *testing.T) {
	t.Parallel()

	data := []byte(`fonts = { regular = "r.ttf", italic = "i.ttf", bold = "b.ttf" }`)

	tree, err := NewParser().Parse(data, "")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"regular": "r.ttf", "italic": "i.ttf", "bold": "b.ttf"}, tree["fonts"])
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte(""), []byte(" \n\t\n")} {
		tree, err := NewParser().Parse(data, "")

		require.NoError(t, err)
		assert.NotNil(t, tree)
		assert.Empty(t, tree)
	}
}

func TestParser_Parse_MissingSection(t *testing.T) {
	t.Parallel()

	_, err := NewParser().Parse([]byte("[book]\n"), "preprocessor:d2")

	require.ErrorIs(t, err, config.ErrSectionNotFound)
}

func TestParser_Parse_SyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"missing value":       "layout =\n",
		"unterminated string": "path = \"d2\nlayout = \"elk\"\n",
		"duplicate key":       "theme = \"1\"\ntheme = \"2\"\n",
		"bad table header":    "[fonts\nregular = \"r.ttf\"\n",
	}

	for name, document := range tests {
		document := document
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := NewParser().Parse([]byte(document), "")

			require.ErrorIs(t, err, config.ErrSyntax)

			var syntaxErr *config.SyntaxError

			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, Format, syntaxErr.Format)
			assert.Positive(t, syntaxErr.Line)
			assert.Positive(t, syntaxErr.Column)
		})
	}
}
