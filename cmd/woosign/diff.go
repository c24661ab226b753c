package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/woosign/pkg/diff"
)

type diffOptions struct {
	from []string
	to   []string
	part string
}

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <component>",
		Short: "Compare the styles of two selections of a component",
		Example: `  woosign diff button --from variant=default --to variant=outline
  woosign diff switch --to size=lg --part thumb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.from, "from", nil, "Left-hand selection as axis=value (repeatable)")
	cmd.Flags().StringArrayVar(&opts.to, "to", nil, "Right-hand selection as axis=value (repeatable)")
	cmd.Flags().StringVar(&opts.part, "part", "", "Component part (default: the primary part)")

	return cmd
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, opts *diffOptions, name string) error {
	from, err := parseSelection(opts.from)
	if err != nil {
		return err
	}
	to, err := parseSelection(opts.to)
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
	part, err := entry.Part(opts.part)
	if err != nil {
		return newCommandError("diff", "looking up part", err, "")
	}

	out := diff.Styles(part.Definition.Resolve(from), part.Definition.Resolve(to), formatSelection(from), formatSelection(to))
	if out == "" {
		fprintln(cmd.OutOrStdout(), "no differences")
		return nil
	}
	_, err = cmd.OutOrStdout().Write([]byte(out))
	return err
}
