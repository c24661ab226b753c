package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/woosign/internal/components"
	"github.com/alexisbeaulieu97/woosign/internal/platform"
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/render/term"
	"github.com/alexisbeaulieu97/woosign/internal/render/web"
	apperrors "github.com/alexisbeaulieu97/woosign/pkg/errors"
)

type renderOptions struct {
	set      []string
	renderer string
	state    []string
	text     string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Render a component with the web or terminal renderer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Select an axis value as axis=value (repeatable)")
	cmd.Flags().StringVar(&opts.renderer, "renderer", "", "Renderer: web or term (default: the build's platform renderer)")
	cmd.Flags().StringSliceVar(&opts.state, "state", nil, "Interaction states, e.g. hover,disabled")
	cmd.Flags().StringVar(&opts.text, "text", "", "Replace the sample text")

	return cmd
}

func pickRenderer(name string) (render.Renderer, error) {
	switch name {
	case "":
		return platform.Default(), nil
	case platform.NameWeb:
		return web.New(), nil
	case "term", platform.NameNative:
		return term.New(), nil
	default:
		return nil, apperrors.NewValidationError("renderer", fmt.Sprintf("unknown renderer %q (want web or term)", name), nil)
	}
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, name string) error {
	renderer, err := pickRenderer(opts.renderer)
	if err != nil {
		return err
	}
	state, err := components.ParseState(opts.state...)
	if err != nil {
		return err
	}
	sel, err := parseSelection(opts.set)
	if err != nil {
		return err
	}

	app, err := loadApp(cmd, rootFlags)
	if err != nil {
		return err
	}
	entry, err := app.entry(name)
	if err != nil {
		return err
	}
	app.warnUndeclared(entry, sel)

	node := entry.Build(components.Request{Selection: sel, State: state, Text: opts.text})
	app.log.WithFields(map[string]any{"component": entry.Name, "renderer": renderer.Name()}).Debug("rendering")
	fprintln(cmd.OutOrStdout(), renderer.Render(node))
	return nil
}
