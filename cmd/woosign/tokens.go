package main

import (
	"github.com/spf13/cobra"
)

type tokensOptions struct {
	format string
}

func newTokensCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the design tokens of the selected colour scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			app, err := loadApp(cmd, rootFlags)
			if err != nil {
				return err
			}
			return writeFormatted(cmd.OutOrStdout(), opts.format, app.theme())
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", formatJSON, "Output format: json or yaml")

	return cmd
}
