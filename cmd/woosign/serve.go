package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/woosign/internal/server"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
)

type serveOptions struct {
	addr string
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web gallery, styles API and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, rootFlags)
			if err != nil {
				return err
			}

			srv, err := server.New(app.themes(), app.buildCatalog, server.WithLogger(app.log))
			if err != nil {
				return newCommandError("serve", "building catalogs", err, "")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:8080", "Listen address")

	return cmd
}

// themes returns the light and dark themes, the selected scheme first so it
// is served by default.
func (a *appContext) themes() []theme.Theme {
	light := theme.NewWithPalettes(theme.SchemeLight, nil, a.light, a.dark)
	dark := theme.NewWithPalettes(theme.SchemeDark, nil, a.light, a.dark)
	if a.theme().IsDark {
		return []theme.Theme{dark, light}
	}
	return []theme.Theme{light, dark}
}
