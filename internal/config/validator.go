package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/woosign/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?$`)
	identPattern  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
			return identPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the schema of f and rejects repeated names. Mistakes that
// resolution tolerates, such as a default naming an undeclared value, are
// reported by Lint instead.
func Validate(f *File) error {
	if f == nil {
		return apperrors.NewValidationError("definitions", "definitions are nil", nil)
	}

	if err := validatorInstance().Struct(f); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]bool, len(f.Components))
	for i, c := range f.Components {
		if seen[c.Name] {
			return apperrors.NewValidationError(fieldForComponent(i, "name"), fmt.Sprintf("duplicate component %q", c.Name), nil)
		}
		seen[c.Name] = true

		axes := make(map[string]bool, len(c.Variants))
		for j, axis := range c.Variants {
			if axes[axis.Name] {
				return apperrors.NewValidationError(fmt.Sprintf("%s.variants[%d]", c.Name, j), fmt.Sprintf("duplicate axis %q", axis.Name), nil)
			}
			axes[axis.Name] = true
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "ident" {
			msg = fmt.Sprintf("%s: %q is not a valid name (letters, digits, '-' and '_')", field, ve.Value())
		}
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("definitions", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = lowerFirst(part)
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}
