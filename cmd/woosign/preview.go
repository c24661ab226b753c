package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/woosign/internal/preview"
	"github.com/alexisbeaulieu97/woosign/internal/render/term"
)

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Launch the interactive component gallery",
		Long:  `Launch the terminal gallery to browse components, cycle their variant values, toggle interaction states and switch colour schemes.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, rootFlags)
			if err != nil {
				return err
			}

			m, err := preview.New(app.provider(), app.buildCatalog, term.New(), preview.WithLogger(app.log))
			if err != nil {
				return newCommandError("preview", "building gallery", err, "")
			}

			app.log.Info("launching gallery")
			if err := preview.Run(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())); err != nil {
				return newCommandError("preview", "running gallery", err, "")
			}
			return nil
		},
	}

	return cmd
}
