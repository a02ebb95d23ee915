package timeindex

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"scribe/internal/textutil"
)

const reportSuffix = " Search Index"

// ReportTitle returns the heading of a job's report, e.g.
// "Weekly Sync Search Index" for job "weekly_sync".
func ReportTitle(job string) string {
	name := strings.Join(strings.Fields(strings.ReplaceAll(job, "_", " ")), " ")
	if name == "" {
		return strings.TrimSpace(reportSuffix)
	}
	return cases.Title(language.Und).String(name) + reportSuffix
}

// ReportFileName returns a filesystem-safe file name for a job's report.
func ReportFileName(job string) string {
	return textutil.SanitizeFileName(ReportTitle(job)) + ".txt"
}

// WriteReport renders x as a plain-text search index. Speakers are listed in
// the order they first appear anywhere in the index.
func WriteReport(w io.Writer, title string, x *Index) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, title)

	order := x.speakerOrder()
	for _, phrase := range x.Phrases() {
		count := x.MentionCount(phrase)
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "'%s'\n", capitalize(phrase))
		if count == 1 {
			fmt.Fprintln(bw, "mentioned 1 time")
		} else {
			fmt.Fprintf(bw, "mentioned %d times\n", count)
		}
		for _, speaker := range order {
			times := x.Times(phrase, speaker)
			if len(times) == 0 {
				continue
			}
			fmt.Fprintln(bw)
			fmt.Fprintln(bw, speaker)
			for _, ts := range times {
				fmt.Fprintln(bw, ts)
			}
		}
	}
	return bw.Flush()
}

func (x *Index) speakerOrder() []string {
	seen := make(map[string]struct{})
	var order []string
	for _, phrase := range x.Phrases() {
		for _, speaker := range x.Speakers(phrase) {
			if _, ok := seen[speaker]; ok {
				continue
			}
			seen[speaker] = struct{}{}
			order = append(order, speaker)
		}
	}
	return order
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
