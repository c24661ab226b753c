package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/woosign/internal/logger"
	apperrors "github.com/alexisbeaulieu97/woosign/pkg/errors"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

const chipYAML = `version: "1.0"
components:
  chip:
    description: compact tag
    base: {display: flex, borderRadius: 9999}
    variants:
      tone:
        neutral: {color: black}
        danger: {color: red}
      size:
        sm: {fontSize: 12}
        lg:
          fontSize: 18
          shadowOffset: {width: 0, height: 2}
    defaultVariants: {tone: neutral, size: sm}
    compoundVariants:
      - {tone: danger, size: lg, style: {fontWeight: "700"}}
  pill:
    base: {padding: 4}
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf, Format: logger.FormatJSON})
	require.NoError(t, err)

	path := writeFile(t, "woosign.yaml", chipYAML)
	f, err := Load(path, log)
	require.NoError(t, err)
	require.Equal(t, path, f.Path)
	require.Equal(t, "1.0", f.Version)
	require.Len(t, f.Components, 2)
	require.Equal(t, "chip", f.Components[0].Name)
	require.Equal(t, "pill", f.Components[1].Name)
	require.Equal(t, 3, f.Components[0].Line)
	require.Contains(t, buf.String(), "loaded definitions")

	chip, ok := f.Component("chip")
	require.True(t, ok)
	require.Equal(t, "compact tag", chip.Description)
	require.Equal(t, []string{"tone", "size"}, []string{chip.Variants[0].Name, chip.Variants[1].Name})
	require.Equal(t, map[string]string{"tone": "neutral", "size": "sm"}, chip.DefaultVariants)
	require.Len(t, chip.CompoundVariants, 1)
	require.Equal(t, map[string]string{"tone": "danger", "size": "lg"}, chip.CompoundVariants[0].When)
	require.Equal(t, style.Map{"fontWeight": "700"}, chip.CompoundVariants[0].Style)

	_, ok = f.Component("missing")
	require.False(t, ok)
}

func TestLoadPreservesAxisOrder(t *testing.T) {
	t.Parallel()

	doc := `components:
  label:
    variants:
      zeta: {on: {color: red}}
      alpha: {on: {color: blue}}
    defaultVariants: {zeta: "on", alpha: "on"}
`
	f, err := Parse("order.yaml", []byte(doc))
	require.NoError(t, err)

	def := f.Components[0].Definition()
	require.Equal(t, []string{"zeta", "alpha"}, def.Axes())
	require.Equal(t, style.Map{"color": "blue"}, def.Resolve(nil))
}

func TestComponentDefinitionResolves(t *testing.T) {
	t.Parallel()

	f, err := Parse("woosign.yaml", []byte(chipYAML))
	require.NoError(t, err)

	chip, ok := f.Component("chip")
	require.True(t, ok)
	def := chip.Definition()

	require.Equal(t, style.Map{"display": "flex", "borderRadius": 9999, "color": "black", "fontSize": 12}, def.Resolve(nil))

	got := def.Resolve(variants.Selection{"tone": "danger", "size": "lg"})
	require.Equal(t, "red", got["color"])
	require.Equal(t, 18, got["fontSize"])
	require.Equal(t, "700", got["fontWeight"])
	require.Equal(t, map[string]any{"width": 0, "height": 2}, got["shadowOffset"])
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		line     int
		check    func(t *testing.T, err error)
	}{
		{
			name:     "malformed yaml",
			contents: "components:\n  chip: [unclosed\n",
			check: func(t *testing.T, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "bad.yaml", parseErr.Path)
			},
		},
		{
			name:     "unknown top-level field",
			contents: "version: \"1.0\"\ntheme: dark\n",
			line:     2,
			check: func(t *testing.T, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "unknown component field",
			contents: "components:\n  chip:\n    colour: red\n",
			line:     3,
			check: func(t *testing.T, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "axis table not a mapping",
			contents: "components:\n  chip:\n    variants:\n      tone: [a, b]\n",
			line:     4,
			check: func(t *testing.T, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "compound condition not scalar",
			contents: "components:\n  chip:\n    compoundVariants:\n      - tone: [a]\n        style: {color: red}\n",
			line:     4,
			check: func(t *testing.T, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "invalid component name",
			contents: "components:\n  \"my chip\":\n    base: {color: red}\n",
			check: func(t *testing.T, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "components[0].name", valErr.Field)
			},
		},
		{
			name:     "invalid version",
			contents: "version: beta\ncomponents: {}\n",
			check: func(t *testing.T, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "version", valErr.Field)
			},
		},
		{
			name:     "duplicate axis",
			contents: "components:\n  chip:\n    variants:\n      tone: {a: {color: red}}\n      tone: {b: {color: blue}}\n",
			check: func(t *testing.T, err error) {
				var valErr *apperrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Contains(t, valErr.Message, "duplicate axis")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse("bad.yaml", []byte(tc.contents))
			require.Error(t, err)
			tc.check(t, err)

			if tc.line > 0 {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, tc.line, parseErr.Line)
			}
		})
	}
}

func TestValidateRejectsDuplicateComponents(t *testing.T) {
	t.Parallel()

	f := &File{Components: []Component{{Name: "chip"}, {Name: "chip"}}}
	err := Validate(f)

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "components[1].name", valErr.Field)

	require.Error(t, Validate(nil))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
}

func TestDefinitionsPath(t *testing.T) {
	t.Setenv(EnvDefinitions, "/etc/woosign.yaml")

	require.Equal(t, "local.yaml", DefinitionsPath("local.yaml"))
	require.Equal(t, "/etc/woosign.yaml", DefinitionsPath(""))
	require.Equal(t, "/etc/woosign.yaml", DefinitionsPath("  "))

	t.Setenv(EnvDefinitions, "")
	require.Equal(t, "", DefinitionsPath(""))
}
