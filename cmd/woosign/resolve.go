package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/woosign/internal/components"
	"github.com/alexisbeaulieu97/woosign/pkg/diff"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

type selectionOptions struct {
	set  []string
	part string
}

func (o *selectionOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&o.set, "set", nil, "Select an axis value as axis=value (repeatable)")
	cmd.Flags().StringVar(&o.part, "part", "", "Component part (default: the primary part)")
}

type resolveOptions struct {
	selectionOptions
	format string
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Print the variant style a selection resolves to",
		Long: `Resolve prints the style mapping of every part of a component for the
given axis values. Omitted axes use their defaults; an unknown value
contributes nothing and never falls back to the default.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, opts, args[0])
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.format, "format", formatJSON, "Output format: json or yaml")

	return cmd
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, opts *resolveOptions, name string) error {
	if err := validateFormat(opts.format); err != nil {
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

	if opts.part != "" {
		part, err := entry.Part(opts.part)
		if err != nil {
			return newCommandError("resolve", "looking up part", err, "Parts of "+entry.Name+": "+strings.Join(entry.PartNames(), ", ")+".")
		}
		return writeFormatted(cmd.OutOrStdout(), opts.format, part.Definition.Resolve(sel))
	}

	return writeFormatted(cmd.OutOrStdout(), opts.format, entry.Resolve(sel))
}

type explainOptions struct {
	selectionOptions
	jsonOutput bool
}

type explanation struct {
	Component string                    `json:"component"`
	Part      string                    `json:"part"`
	Selection variants.Selection        `json:"selection"`
	Effective variants.Selection        `json:"effective"`
	Axes      []variants.AxisResolution `json:"axes"`
	Compounds []int                     `json:"compounds"`
	Style     style.Map                 `json:"style"`
}

func newExplainCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &explainOptions{}

	cmd := &cobra.Command{
		Use:   "explain <component>",
		Short: "Show how each axis and compound rule contributed to a resolution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, rootFlags, opts, args[0])
		},
	}

	opts.bind(cmd)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runExplain(cmd *cobra.Command, rootFlags *rootFlags, opts *explainOptions, name string) error {
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

	part, err := entry.Part(opts.part)
	if err != nil {
		return newCommandError("explain", "looking up part", err, "Parts of "+entry.Name+": "+strings.Join(entry.PartNames(), ", ")+".")
	}

	ex := explain(entry, part, sel)
	if opts.jsonOutput {
		return writeFormatted(cmd.OutOrStdout(), formatJSON, ex)
	}
	return renderExplanation(cmd, ex)
}

func explain(entry *components.Entry, part components.Part, sel variants.Selection) explanation {
	def := part.Definition
	compounds := def.MatchingCompounds(sel)
	if compounds == nil {
		compounds = []int{}
	}
	return explanation{
		Component: entry.Name,
		Part:      part.Name,
		Selection: sel,
		Effective: def.Effective(sel),
		Axes:      def.Explain(sel),
		Compounds: compounds,
		Style:     def.Resolve(sel),
	}
}

func renderExplanation(cmd *cobra.Command, ex explanation) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "component: %s (part %s)\n", ex.Component, ex.Part)
	fmt.Fprintf(out, "selection: %s\n\n", formatSelection(ex.Selection))

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "AXIS\tVALUE\tOUTCOME")
	for _, axis := range ex.Axes {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", axis.Axis, valueOrFallback(axis.Value, "-"), axis.Outcome)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	if len(ex.Compounds) == 0 {
		fprintln(out, "\ncompounds: none")
	} else {
		labels := make([]string, len(ex.Compounds))
		for i, idx := range ex.Compounds {
			labels[i] = fmt.Sprintf("#%d", idx+1)
		}
		fprintln(out, "\ncompounds:", strings.Join(labels, ", "))
	}

	fprintln(out, "\nstyle:")
	for _, line := range strings.Split(strings.TrimSuffix(string(diff.Lines(ex.Style)), "\n"), "\n") {
		if line != "" {
			fprintln(out, "  "+line)
		}
	}
	return nil
}
