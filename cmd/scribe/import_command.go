package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/catalog"
	"scribe/internal/config"
	"scribe/internal/language"
	"scribe/internal/transcript"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var jobName string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a transcription document into the catalog",
		Long: "Import a finished transcription job's JSON output. The job name defaults to the\n" +
			"document's jobName, falling back to the file name.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			doc, err := transcript.Load(path)
			if err != nil {
				return err
			}

			job := strings.TrimSpace(jobName)
			if job == "" {
				job = strings.TrimSpace(doc.JobName)
			}
			if job == "" {
				job = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			return ctx.withCatalog(func(_ *config.Config, store *catalog.Store) error {
				entry, err := store.Import(cmd.Context(), job, doc, catalog.ImportOptions{
					SourcePath: path,
					Overwrite:  overwrite,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %s, %s, %s\n",
					entry.JobName,
					pluralize(entry.WordCount, "word", "words"),
					pluralize(entry.SpeakerCount, "speaker", "speakers"),
					language.DisplayName(entry.LanguageCode),
				)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&jobName, "job", "j", "", "Job name to store the transcript under")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing job with the same name")
	return cmd
}
