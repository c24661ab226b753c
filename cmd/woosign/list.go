package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/woosign/internal/components"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components with their parts and variant axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type listJSONComponent struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Parts       []string            `json:"parts"`
	Axes        []string            `json:"axes"`
	Values      map[string][]string `json:"values"`
	Defaults    map[string]string   `json:"defaults"`
	Custom      bool                `json:"custom"`
}

type listJSONPayload struct {
	Count      int                 `json:"count"`
	Components []listJSONComponent `json:"components"`
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	app, err := loadApp(cmd, rootFlags)
	if err != nil {
		return err
	}
	catalog, err := app.catalog()
	if err != nil {
		return err
	}

	entries := catalog.Entries()
	if opts.jsonOutput {
		return renderListJSON(cmd, entries)
	}
	return renderListTable(cmd, entries)
}

func renderListTable(cmd *cobra.Command, entries []*components.Entry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tPARTS\tAXES\tDESCRIPTION")
	for _, e := range entries {
		name := e.Name
		if e.Custom {
			name += "*"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			name,
			strings.Join(e.PartNames(), ","),
			valueOrFallback(strings.Join(e.Axes(), ","), "-"),
			e.Description,
		)
	}

	return writer.Flush()
}

func renderListJSON(cmd *cobra.Command, entries []*components.Entry) error {
	payload := listJSONPayload{
		Count:      len(entries),
		Components: make([]listJSONComponent, len(entries)),
	}

	for i, e := range entries {
		values := make(map[string][]string)
		for _, axis := range e.Axes() {
			values[axis] = e.AxisValues(axis)
		}
		defaults := map[string]string{}
		if primary, err := e.Part(""); err == nil {
			defaults = primary.Definition.Defaults()
		}
		payload.Components[i] = listJSONComponent{
			Name:        e.Name,
			Description: e.Description,
			Parts:       e.PartNames(),
			Axes:        e.Axes(),
			Values:      values,
			Defaults:    defaults,
			Custom:      e.Custom,
		}
	}

	return writeFormatted(cmd.OutOrStdout(), formatJSON, payload)
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
