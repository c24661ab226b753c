package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/woosign/pkg/errors"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch strings.ToLower(format) {
	case formatJSON, formatYAML:
		return nil
	default:
		return apperrors.NewValidationError("format", fmt.Sprintf("unsupported format %q (want json or yaml)", format), nil)
	}
}

func writeFormatted(w io.Writer, format string, v any) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if strings.ToLower(format) == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
