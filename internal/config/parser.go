package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/woosign/internal/logger"
	apperrors "github.com/alexisbeaulieu97/woosign/pkg/errors"
)

// EnvDefinitions names the environment variable consulted when no
// definitions path is given explicitly.
const EnvDefinitions = "WOOSIGN_DEFINITIONS"

// DefinitionsPath returns explicit when set, otherwise the value of
// EnvDefinitions. An empty result means no definitions file.
func DefinitionsPath(explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return strings.TrimSpace(os.Getenv(EnvDefinitions))
}

// Load reads, decodes and validates the definitions file at path.
func Load(path string, log *logger.Logger) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	f, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{"path": path, "components": len(f.Components)}).Debug("loaded definitions")
	return f, nil
}

// Parse decodes and validates a definitions document. path is only used in
// error messages.
func Parse(path string, data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, apperrors.NewParseError(path, apperrors.LineFromMessage(err), err)
	}
	f.Path = path

	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}
