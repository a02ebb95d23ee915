package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/api"
	"scribe/internal/config"
	"scribe/internal/fileutil"
	"scribe/internal/timeindex"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	var file string
	var queries []string
	var watchListFile string
	var skipWatchList bool
	var jsonOut bool
	var outputDir string
	var save bool

	cmd := &cobra.Command{
		Use:   "index [job]",
		Short: "Build a search index of queries and watch words",
		Long: "Search a transcript for every --query and every configured watch word and\n" +
			"print when each phrase was said, grouped by speaker. Watch words without a\n" +
			"match are left out of the index.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, _, err := splitSourceArgs(args, file)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var watchWords []string
			if !skipWatchList {
				watchWords, err = cfg.WatchList()
				if err != nil {
					return fmt.Errorf("load watch list: %w", err)
				}
			}
			if watchListFile != "" {
				path, err := config.ExpandPath(watchListFile)
				if err != nil {
					return err
				}
				extra, err := config.LoadWatchList(path)
				if err != nil {
					return err
				}
				watchWords = append(watchWords, extra...)
			}

			src, err := ctx.loadTranscript(cmd.Context(), job, file)
			if err != nil {
				return err
			}
			analyzer, err := ctx.analyzer()
			if err != nil {
				return err
			}
			x, missing, err := analyzer.BuildIndex(src.index, queries, watchWords)
			if err != nil {
				return err
			}

			title := timeindex.ReportTitle(src.job)
			var report bytes.Buffer
			if err := timeindex.WriteReport(&report, title, x); err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			dir := strings.TrimSpace(outputDir)
			if dir == "" && save {
				dir = cfg.Paths.ReportDir
			}
			var reportPath string
			if dir != "" {
				reportPath, err = writeReportFile(dir, src.job, report.Bytes())
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, api.IndexResult{
					Job:     src.job,
					Title:   title,
					Entries: api.FromIndex(x),
					Missing: missing,
				})
			}
			if _, err := out.Write(report.Bytes()); err != nil {
				return err
			}
			for _, phrase := range missing {
				fmt.Fprintf(cmd.ErrOrStderr(), "No match for '%s'\n", phrase)
			}
			if reportPath != "" {
				fmt.Fprintf(out, "\nWrote search index to %s\n", reportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read a transcription document instead of a catalog job")
	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "Word or phrase to index (repeatable)")
	cmd.Flags().StringVar(&watchListFile, "watch-list", "", "YAML file with additional watch words")
	cmd.Flags().BoolVar(&skipWatchList, "no-watch-list", false, "Ignore the configured watch words")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to write the report file to")
	cmd.Flags().BoolVar(&save, "save", false, "Write the report file to the configured report_dir")
	return cmd
}

func writeReportFile(dir, job string, data []byte) (string, error) {
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	path := filepath.Join(expanded, timeindex.ReportFileName(job))
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
