package cli

import (
	"github.com/spf13/cobra"

	"github.com/vcrobe/hookdom/appcomponents"
	"github.com/vcrobe/hookdom/runtime"
)

// RenderResult is the output of the render command.
type RenderResult struct {
	HTML    string `json:"html"`
	Renders int    `json:"renders"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Mount the app and print its HTML",
		Long: `Mount the app on a fresh in-memory document, reading persisted state
from the configured store, and print the document body.

Example:
  hookdom render --store-driver file --store-path ./state.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderApp(rootOpts, cmd)
		},
	}
	return cmd
}

func renderApp(opts *RootOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	kv, err := opts.openStore()
	if err != nil {
		return err
	}
	defer closeStore(kv)

	pg := opts.newPage(nil)
	renders := 0
	pg.c.Rendered.Subscribe(func(_ runtime.RenderInfo) { renders++ })

	if err := appcomponents.Mount(pg.c, pg.container, kv); err != nil {
		return f.Failure(ExitFailure, "render failed", err)
	}
	f.VerboseLog("rendered %d time(s)", renders)

	html := pg.doc.HTML()
	return f.Success(RenderResult{HTML: html, Renders: renders}, html)
}
