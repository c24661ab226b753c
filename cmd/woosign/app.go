package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/woosign/internal/components"
	"github.com/alexisbeaulieu97/woosign/internal/config"
	"github.com/alexisbeaulieu97/woosign/internal/logger"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	apperrors "github.com/alexisbeaulieu97/woosign/pkg/errors"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// appContext carries what every command needs: the logger, the palettes
// after overrides and the optional definitions file.
type appContext struct {
	log    *logger.Logger
	scheme theme.ColorScheme
	light  theme.Palette
	dark   theme.Palette
	defs   *config.File
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Format: flags.logFormat, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError("start", "creating logger", err, "Use --log-format auto, json or console.")
	}
	log = log.With("command", cmd.Name())

	scheme, err := theme.ParseColorScheme(flags.scheme)
	if err != nil {
		return nil, newCommandError("start", "parsing colour scheme", err, "Use --scheme light, dark or system.")
	}

	app := &appContext{log: log, scheme: scheme, light: theme.Colors, dark: theme.DarkColors}

	if flags.themeOverrides != "" {
		overrides, err := theme.LoadOverrides(flags.themeOverrides)
		if err != nil {
			return nil, newCommandError("start", "loading theme overrides", err, "Check the overrides file syntax.")
		}
		app.light, app.dark, err = overrides.Apply(app.light, app.dark)
		if err != nil {
			return nil, newCommandError("start", "applying theme overrides", err, "Override keys must name palette tokens such as primary or mutedForeground.")
		}
		log.With("path", flags.themeOverrides).Debug("applied theme overrides")
	}

	if path := config.DefinitionsPath(flags.definitions); path != "" {
		defs, err := config.Load(path, log)
		if err != nil {
			return nil, newCommandError("start", "loading definitions", err, "Run 'woosign lint "+path+"' for details.")
		}
		app.defs = defs
	}

	return app, nil
}

func (a *appContext) provider() *theme.Provider {
	return theme.NewProvider(a.scheme, theme.WithPalettes(a.light, a.dark))
}

func (a *appContext) theme() theme.Theme {
	return a.provider().Theme()
}

// buildCatalog returns the built-in components for t plus the components of
// the definitions file, if any.
func (a *appContext) buildCatalog(t theme.Theme) (*components.Catalog, error) {
	catalog := components.NewCatalog(components.ForTheme(t))
	if a.defs == nil {
		return catalog, nil
	}

	for _, c := range a.defs.Components {
		entry := components.CustomEntry(c.Name, c.Definition())
		if c.Description != "" {
			entry.Description = c.Description
		}
		if err := catalog.Register(entry); err != nil {
			return nil, fmt.Errorf("register %s from %s: %w", c.Name, a.defs.Path, err)
		}
	}
	return catalog, nil
}

func (a *appContext) catalog() (*components.Catalog, error) {
	catalog, err := a.buildCatalog(a.theme())
	if err != nil {
		return nil, newCommandError("load components", "building catalog", err, "Rename components that clash with built-in ones.")
	}
	return catalog, nil
}

func (a *appContext) entry(name string) (*components.Entry, error) {
	catalog, err := a.catalog()
	if err != nil {
		return nil, err
	}
	entry, err := catalog.Get(name)
	if err != nil {
		return nil, newCommandError("load components", "looking up "+name, err, "Run 'woosign list' to see available components.")
	}
	return entry, nil
}

// warnUndeclared logs selection axes the component does not declare.
// Resolution ignores them.
func (a *appContext) warnUndeclared(entry *components.Entry, sel variants.Selection) {
	declared := make(map[string]bool)
	for _, axis := range entry.Axes() {
		declared[axis] = true
	}
	for _, axis := range sortedKeys(sel) {
		if !declared[axis] {
			a.log.WithFields(map[string]any{"component": entry.Name, "axis": axis}).Warn("axis is not declared; ignored")
		}
	}
}

// parseSelection parses repeated axis=value pairs. An empty value leaves the
// axis unset.
func parseSelection(pairs []string) (variants.Selection, error) {
	sel := variants.Selection{}
	for _, pair := range pairs {
		axis, value, ok := strings.Cut(pair, "=")
		axis = strings.TrimSpace(axis)
		if !ok || axis == "" {
			return nil, apperrors.NewValidationError("set", fmt.Sprintf("expected axis=value, got %q", pair), nil)
		}
		sel[axis] = strings.TrimSpace(value)
	}
	return sel, nil
}

func formatSelection(sel variants.Selection) string {
	var parts []string
	for _, axis := range sortedKeys(sel) {
		if sel[axis] != "" {
			parts = append(parts, axis+"="+sel[axis])
		}
	}
	if len(parts) == 0 {
		return "(defaults)"
	}
	return strings.Join(parts, ",")
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
