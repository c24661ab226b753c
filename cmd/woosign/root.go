package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/woosign/internal/config"
	"github.com/alexisbeaulieu97/woosign/internal/logger"
)

type rootFlags struct {
	definitions    string
	themeOverrides string
	scheme         string
	verbose        bool
	logFormat      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "woosign",
		Short:         "woosign resolves, renders and previews design-system components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.definitions, "definitions", "", "Definitions file with extra components (default $"+config.EnvDefinitions+")")
	cmd.PersistentFlags().StringVar(&flags.themeOverrides, "theme-overrides", "", "TOML or YAML file overriding palette colours")
	cmd.PersistentFlags().StringVar(&flags.scheme, "scheme", "light", "Colour scheme: light, dark or system")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logger.FormatAuto, "Log format: auto, json or console")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newExplainCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newLintCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
