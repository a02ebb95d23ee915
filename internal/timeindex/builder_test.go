package timeindex_test

import (
	"reflect"
	"testing"

	"scribe/internal/search"
	"scribe/internal/speakers"
	"scribe/internal/testsupport"
	"scribe/internal/timeindex"
	"scribe/internal/transcript"
)

func meeting(t *testing.T) *transcript.Index {
	t.Helper()
	return testsupport.MustIndex(t, testsupport.Join(
		testsupport.Words("spk_0", 0, "the", "budget", "is", "due", "friday"),
		testsupport.Words("spk_1", 5, "the", "budget", "again"),
		testsupport.Words("spk_0", 8, "yes", "the", "budget"),
	)...)
}

func TestBuilderCombinesAdHocAndWatchList(t *testing.T) {
	idx := meeting(t)
	opts := search.DefaultOptions()
	opts.AllOccurrences = true
	b := timeindex.NewBuilder(search.NewEngine(opts), idx, speakers.Names{"spk_1": "Ana"})

	res, err := b.Search("the budget")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(res.Matches))
	}
	if err := b.AddWatchList([]string{"friday", "deadline", "  ", "Again!"}); err != nil {
		t.Fatalf("AddWatchList: %v", err)
	}

	x := b.Index()
	if got, want := x.Phrases(), []string{"the budget", "friday", "again"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Phrases() = %v, want %v", got, want)
	}
	if x.Has("deadline") {
		t.Fatal("watch word without matches must be omitted")
	}
	if got, want := x.Speakers("the budget"), []string{"Speaker 1", "Ana"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Speakers() = %v, want %v", got, want)
	}
	if got, want := x.Times("the budget", "Speaker 1"), []string{"00:00:00", "00:00:09"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Times() = %v, want %v", got, want)
	}
	if got := x.MentionCount("the budget"); got != 3 {
		t.Fatalf("MentionCount() = %d, want 3", got)
	}
	if got := x.MentionCount("deadline"); got != 0 {
		t.Fatalf("MentionCount(missing) = %d, want 0", got)
	}
}

func TestMentionCountMatchesSpeakerTimes(t *testing.T) {
	idx := meeting(t)
	opts := search.DefaultOptions()
	opts.AllOccurrences = true
	b := timeindex.NewBuilder(search.NewEngine(opts), idx, nil)
	if err := b.AddWatchList([]string{"the", "budget", "yes", "the budget"}); err != nil {
		t.Fatalf("AddWatchList: %v", err)
	}

	for _, entry := range b.Index().Entries() {
		sum := 0
		for _, s := range entry.Speakers {
			sum += len(s.Times)
		}
		if got := b.Index().MentionCount(entry.Phrase); got != sum || got != entry.MentionCount() {
			t.Errorf("%q: MentionCount() = %d, speaker sum %d", entry.Phrase, got, sum)
		}
	}
}

func TestRecordReplacesPhraseInPlace(t *testing.T) {
	x := timeindex.NewIndex()
	x.Record(speakers.Attribution{Phrase: "alpha", Speakers: []speakers.SpeakerTimes{{Speaker: "A", Times: []string{"00:00:01"}}}})
	x.Record(speakers.Attribution{Phrase: "beta", Speakers: []speakers.SpeakerTimes{{Speaker: "B", Times: []string{"00:00:02"}}}})
	x.Record(speakers.Attribution{Phrase: "alpha", Speakers: []speakers.SpeakerTimes{{Speaker: "C", Times: []string{"00:00:03", "00:00:04"}}}})
	x.Record(speakers.Attribution{Phrase: "empty"})

	want := []speakers.Attribution{
		{Phrase: "alpha", Speakers: []speakers.SpeakerTimes{{Speaker: "C", Times: []string{"00:00:03", "00:00:04"}}}},
		{Phrase: "beta", Speakers: []speakers.SpeakerTimes{{Speaker: "B", Times: []string{"00:00:02"}}}},
	}
	if got := x.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Entries() = %#v, want %#v", got, want)
	}
}

func TestBuilderFirstOccurrenceByDefault(t *testing.T) {
	b := timeindex.NewBuilder(nil, meeting(t), nil)
	if _, err := b.Search("budget"); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got := b.Index().MentionCount("budget"); got != 1 {
		t.Fatalf("MentionCount() = %d, want 1", got)
	}
}
