package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/woosign/internal/config"
)

type lintOptions struct {
	strict     bool
	jsonOutput bool
}

func newLintCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint <file>",
		Short: "Validate a definitions file and report misconfigurations",
		Long: `Lint loads a definitions file, failing on syntax and schema errors, and
then reports conditions that resolve silently to nothing: defaults missing
from their axis, compound rules on undeclared axes or values, and rules
without a style.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error when warnings are found")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output warnings in JSON format")

	return cmd
}

type lintJSONPayload struct {
	Path     string           `json:"path"`
	Count    int              `json:"count"`
	Warnings []config.Warning `json:"warnings"`
}

func runLint(cmd *cobra.Command, rootFlags *rootFlags, opts *lintOptions, path string) error {
	// The file under lint replaces any configured definitions.
	flags := *rootFlags
	flags.definitions = ""
	app, err := loadApp(cmd, &flags)
	if err != nil {
		return err
	}

	f, err := config.Load(path, app.log)
	if err != nil {
		return newCommandError("lint", "loading "+path, err, "")
	}

	warnings := config.Lint(f)
	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		if warnings == nil {
			warnings = []config.Warning{}
		}
		if err := writeFormatted(out, formatJSON, lintJSONPayload{Path: path, Count: len(warnings), Warnings: warnings}); err != nil {
			return err
		}
	} else {
		for _, w := range warnings {
			fprintln(out, w.String())
		}
		if len(warnings) == 0 {
			fmt.Fprintf(out, "%s: %d components, no issues found\n", path, len(f.Components))
		} else {
			fmt.Fprintf(out, "%s: %d warning(s)\n", path, len(warnings))
		}
	}

	if opts.strict && len(warnings) > 0 {
		return fmt.Errorf("%s: %d warning(s)", path, len(warnings))
	}
	return nil
}
