package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"scribe/internal/api"
	"scribe/internal/catalog"
	"scribe/internal/config"
)

func newJobsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "List imported transcripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(_ *config.Config, store *catalog.Store) error {
				entries, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				items := api.FromEntries(entries)
				if jsonOut {
					if items == nil {
						items = []api.Transcript{}
					}
					return writeJSON(cmd.OutOrStdout(), items)
				}

				out := cmd.OutOrStdout()
				if len(items) == 0 {
					fmt.Fprintln(out, "No transcripts imported")
					return nil
				}
				rows := make([][]string, 0, len(entries))
				for i, item := range items {
					rows = append(rows, []string{
						item.JobName,
						item.Language,
						strconv.Itoa(item.SpeakerCount),
						strconv.Itoa(item.WordCount),
						entries[i].ImportedAt.Local().Format(time.DateTime),
					})
				}
				fmt.Fprintln(out, renderTable([]column{
					{header: "Job"},
					{header: "Language"},
					{header: "Speakers", align: alignRight},
					{header: "Words", align: alignRight},
					{header: "Imported"},
				}, rows))
				return nil
			})
		},
	}
	jobsCmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	jobsCmd.AddCommand(newJobsRemoveCommand(ctx))
	return jobsCmd
}

func newJobsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <job>...",
		Aliases: []string{"rm"},
		Short:   "Remove transcripts from the catalog",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(_ *config.Config, store *catalog.Store) error {
				for _, job := range args {
					if err := store.Remove(cmd.Context(), job); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", catalog.NormalizeJobName(job))
				}
				return nil
			})
		},
	}
}
