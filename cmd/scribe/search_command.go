package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scribe/internal/api"
	"scribe/internal/logging"
	"scribe/internal/search"
	"scribe/internal/transcript"
)

const searchPrompt = "Enter a suggestion number, a new search, or q to quit: "

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var file string
	var jsonOut bool
	var noInteractive bool
	var forceInteractive bool

	cmd := &cobra.Command{
		Use:   "search [job] <query...>",
		Short: "Find when a word or phrase was said and by whom",
		Long: "Search a transcript for a word or phrase. When nothing matches, ranked\n" +
			"suggestions of the same length are offered; on a terminal you can pick one\n" +
			"by number, type a new search, or quit with q.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, rest, err := splitSourceArgs(args, file)
			if err != nil {
				return err
			}
			query := strings.Join(rest, " ")
			if strings.TrimSpace(query) == "" {
				return fmt.Errorf("a search query is required")
			}

			src, err := ctx.loadTranscript(cmd.Context(), job, file)
			if err != nil {
				return err
			}
			analyzer, err := ctx.analyzer()
			if err != nil {
				return err
			}

			interactive := !noInteractive && !jsonOut && (forceInteractive || isTerminal(cmd.InOrStdin()))
			if interactive {
				logger, err := ctx.ensureLogger()
				if err != nil {
					return err
				}
				runCtx := logging.WithSessionID(logging.WithJob(cmd.Context(), src.job), uuid.NewString())
				return runInteractiveSearch(runCtx, cmd.InOrStdin(), cmd.OutOrStdout(), logger, analyzer, src.index, query)
			}

			res, err := analyzer.Search(src.index, query)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			printSearchResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read a transcription document instead of a catalog job")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Print suggestions without prompting")
	cmd.Flags().BoolVar(&forceInteractive, "interactive", false, "Prompt for suggestions even when stdin is not a terminal")
	cmd.MarkFlagsMutuallyExclusive("interactive", "no-interactive")
	return cmd
}

func runInteractiveSearch(ctx context.Context, in io.Reader, out io.Writer, logger *slog.Logger, analyzer *api.Analyzer, idx *transcript.Index, query string) error {
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "search"))
	names := analyzer.Names(idx)
	session := search.NewSession(analyzer.Engine(), idx)
	scanner := bufio.NewScanner(in)

	outcome, err := session.Submit(ctx, query)
	for {
		if err != nil {
			return err
		}
		logger.Debug("search round",
			logging.Query(outcome.Query.Phrase()),
			logging.String("outcome", outcome.Kind.String()),
		)
		switch outcome.Kind {
		case search.OutcomeFound:
			res, err := analyzer.Result(idx, names, search.Result{Query: outcome.Query, Matches: outcome.Matches})
			if err != nil {
				return err
			}
			printSearchResult(out, res)
			return nil
		case search.OutcomeCancelled:
			fmt.Fprintln(out, "Search cancelled")
			return nil
		}

		printNoMatch(out, outcome.Query.Phrase(), api.FromCandidates(outcome.Suggestions))
		outcome, err = promptNextRound(ctx, scanner, out, session)
	}
}

func promptNextRound(ctx context.Context, scanner *bufio.Scanner, out io.Writer, session *search.Session) (search.Outcome, error) {
	for {
		fmt.Fprint(out, searchPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return session.Cancel(), scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "q"):
			return session.Cancel(), nil
		}

		if n, convErr := strconv.Atoi(line); convErr == nil {
			outcome, err := session.Choose(ctx, n)
			if errors.Is(err, search.ErrInvalidSuggestionSelection) {
				if count := len(session.Suggestions()); count > 0 {
					fmt.Fprintf(out, "Choose a number between 1 and %d\n", count)
				} else {
					fmt.Fprintln(out, "There are no suggestions to choose from")
				}
				continue
			}
			return outcome, err
		}

		outcome, err := session.Submit(ctx, line)
		if errors.Is(err, search.ErrEmptyQuery) {
			continue
		}
		return outcome, err
	}
}

func printSearchResult(out io.Writer, res api.SearchResult) {
	if !res.Found() {
		printNoMatch(out, res.Query, res.Suggestions)
		return
	}
	fmt.Fprintf(out, "'%s' was mentioned %s\n", res.Query, pluralize(len(res.Matches), "time", "times"))
	rows := make([][]string, 0, len(res.Matches))
	for i, m := range res.Matches {
		rows = append(rows, []string{strconv.Itoa(i + 1), m.Time, m.Speaker})
	}
	fmt.Fprintln(out, renderTable([]column{
		{header: "#", align: alignRight},
		{header: "Time"},
		{header: "Speaker"},
	}, rows))
	if res.Mentions != nil && len(res.Mentions.Speakers) > 1 {
		for _, s := range res.Mentions.Speakers {
			fmt.Fprintf(out, "%s: %s\n", s.Speaker, strings.Join(s.Times, ", "))
		}
	}
}

func printNoMatch(out io.Writer, query string, suggestions []api.Suggestion) {
	fmt.Fprintf(out, "No match for '%s'\n", query)
	if len(suggestions) == 0 {
		fmt.Fprintln(out, "No similar words or phrases found")
		return
	}
	fmt.Fprintln(out, "Did you mean:")
	rows := make([][]string, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, []string{strconv.Itoa(s.Rank), s.Text, strconv.Itoa(s.Distance)})
	}
	fmt.Fprintln(out, renderTable([]column{
		{header: "#", align: alignRight},
		{header: "Suggestion"},
		{header: "Distance", align: alignRight},
	}, rows))
}
