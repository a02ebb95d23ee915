package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribe/internal/api"
	"scribe/internal/language"
)

type transcriptView struct {
	Job      string        `json:"job"`
	Language string        `json:"language"`
	Speakers []api.Speaker `json:"speakers"`
	Segments []api.Segment `json:"segments"`
}

func newTranscriptCommand(ctx *commandContext) *cobra.Command {
	var file string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "transcript [job]",
		Short: "Print a transcript with speaker names and time spans",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, _, err := splitSourceArgs(args, file)
			if err != nil {
				return err
			}
			src, err := ctx.loadTranscript(cmd.Context(), job, file)
			if err != nil {
				return err
			}
			analyzer, err := ctx.analyzer()
			if err != nil {
				return err
			}

			view := transcriptView{Job: src.job, Language: language.DisplayName(src.language)}
			view.Speakers, view.Segments = analyzer.Describe(src.index)
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), view)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", view.Job, view.Language)
			for _, seg := range view.Segments {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "%s [%s]:\n", seg.Speaker, seg.Span)
				fmt.Fprintln(out, seg.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read a transcription document instead of a catalog job")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
