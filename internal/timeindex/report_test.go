package timeindex_test

import (
	"strings"
	"testing"

	"scribe/internal/speakers"
	"scribe/internal/timeindex"
)

func TestReportTitleAndFileName(t *testing.T) {
	tests := []struct {
		job   string
		title string
		file  string
	}{
		{"weekly_sync", "Weekly Sync Search Index", "Weekly Sync Search Index.txt"},
		{"ops / infra", "Ops / Infra Search Index", "Ops - Infra Search Index.txt"},
		{"", "Search Index", "Search Index.txt"},
	}
	for _, tt := range tests {
		if got := timeindex.ReportTitle(tt.job); got != tt.title {
			t.Errorf("ReportTitle(%q) = %q, want %q", tt.job, got, tt.title)
		}
		if got := timeindex.ReportFileName(tt.job); got != tt.file {
			t.Errorf("ReportFileName(%q) = %q, want %q", tt.job, got, tt.file)
		}
	}
}

func TestWriteReport(t *testing.T) {
	x := timeindex.NewIndex()
	x.Record(speakers.Attribution{Phrase: "budget", Speakers: []speakers.SpeakerTimes{
		{Speaker: "Ana", Times: []string{"00:00:01", "00:00:09"}},
		{Speaker: "Speaker 2", Times: []string{"00:00:06"}},
	}})
	x.Record(speakers.Attribution{Phrase: "friday", Speakers: []speakers.SpeakerTimes{
		{Speaker: "Speaker 2", Times: []string{"00:00:04"}},
	}})

	var sb strings.Builder
	if err := timeindex.WriteReport(&sb, "Weekly Sync Search Index", x); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	want := strings.Join([]string{
		"Weekly Sync Search Index",
		"",
		"'Budget'",
		"mentioned 3 times",
		"",
		"Ana",
		"00:00:01",
		"00:00:09",
		"",
		"Speaker 2",
		"00:00:06",
		"",
		"'Friday'",
		"mentioned 1 time",
		"",
		"Speaker 2",
		"00:00:04",
		"",
	}, "\n")
	if got := sb.String(); got != want {
		t.Fatalf("report mismatch\n got: %q\nwant: %q", got, want)
	}
}
