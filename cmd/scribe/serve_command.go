package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/api"
	"scribe/internal/catalog"
	"scribe/internal/config"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the transcript catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			return ctx.withCatalog(func(cfg *config.Config, store *catalog.Store) error {
				watchWords, err := cfg.WatchList()
				if err != nil {
					return fmt.Errorf("load watch list: %w", err)
				}
				addr := strings.TrimSpace(bind)
				if addr == "" {
					addr = cfg.API.Bind
				}
				service := api.NewTranscriptService(store, api.NewAnalyzer(cfg))
				server := api.NewServer(service, api.ServerOptions{
					Bind:       addr,
					WatchWords: watchWords,
					Logger:     logger,
				})
				return server.Listen(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (defaults to api.bind)")
	return cmd
}
