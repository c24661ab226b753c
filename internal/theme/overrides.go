package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/woosign/pkg/errors"
)

// Overrides replaces individual colour tokens of the light and dark palettes.
// Keys are token names as they appear in Palette tags (primary,
// mutedForeground, ...).
type Overrides struct {
	Light map[string]string `toml:"light" yaml:"light"`
	Dark  map[string]string `toml:"dark" yaml:"dark"`
}

// LoadOverrides reads a TOML or YAML overrides file, chosen by extension.
func LoadOverrides(path string) (Overrides, error) {
	var out Overrides

	data, err := os.ReadFile(path)
	if err != nil {
		return out, apperrors.NewParseError(path, 0, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &out); err != nil {
			line := 0
			var perr toml.ParseError
			if errors.As(err, &perr) {
				line = perr.Position.Line
			}
			return Overrides{}, apperrors.NewParseError(path, line, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return Overrides{}, apperrors.NewParseError(path, apperrors.LineFromMessage(err), err)
		}
	default:
		return out, apperrors.NewValidationError("path", fmt.Sprintf("unsupported overrides extension %q", filepath.Ext(path)), nil)
	}

	return out, nil
}

// Apply returns the light and dark palettes with the overrides applied.
func (o Overrides) Apply(light, dark Palette) (Palette, Palette, error) {
	l, err := applyPalette(light, o.Light, "light")
	if err != nil {
		return Palette{}, Palette{}, err
	}
	d, err := applyPalette(dark, o.Dark, "dark")
	if err != nil {
		return Palette{}, Palette{}, err
	}
	return l, d, nil
}

func applyPalette(p Palette, overrides map[string]string, field string) (Palette, error) {
	if len(overrides) == 0 {
		return p, nil
	}

	tokens := map[string]string{}
	if err := decodePalette(p, &tokens); err != nil {
		return Palette{}, err
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, ok := tokens[name]; !ok {
			return Palette{}, apperrors.NewValidationError(field+"."+name, "unknown colour token", nil)
		}
		tokens[name] = overrides[name]
	}

	var out Palette
	if err := decodePalette(tokens, &out); err != nil {
		return Palette{}, err
	}
	return out, nil
}

func decodePalette(input, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "yaml",
		ErrorUnused: true,
		Result:      output,
	})
	if err != nil {
		return fmt.Errorf("build palette decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode palette: %w", err)
	}
	return nil
}
