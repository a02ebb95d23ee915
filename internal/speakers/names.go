package speakers

import (
	"slices"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"scribe/internal/textutil"
	"scribe/internal/transcript"
)

// DefaultNameIntroductionWordBound is the last word position (zero-based, per
// speaker) at which an implicit introduction still counts.
const DefaultNameIntroductionWordBound = 30

// Introduction is a phrase people use to introduce themselves.
type Introduction struct {
	Name   string `toml:"name"`
	Phrase string `toml:"phrase"`
	// Explicit introductions ("my name is") are trusted wherever they occur.
	// Implicit ones ("i'm") only count early on and before an alphabetic word.
	Explicit bool `toml:"explicit"`
}

// DefaultIntroductions returns the built-in rules in priority order.
func DefaultIntroductions() []Introduction {
	return []Introduction{
		{Name: "name", Phrase: "my name is", Explicit: true},
		{Name: "go_by", Phrase: "i go by", Explicit: true},
		{Name: "call_me", Phrase: "call me", Explicit: true},
		{Name: "this_is", Phrase: "this is"},
		{Name: "i_am", Phrase: "i am"},
		{Name: "im", Phrase: "im"},
	}
}

// Names maps raw speaker labels to identified names.
type Names map[string]string

// Resolve returns the identified name for label, or its display label.
func (n Names) Resolve(label string) string {
	if name, ok := n[label]; ok && name != "" {
		return name
	}
	return transcript.DisplayLabel(label)
}

// IdentifyNames looks for self-introductions in each speaker's words. Rules are
// tried in order and the first rule that yields a name wins. Speakers without
// a name are left out of the result.
func IdentifyNames(idx *transcript.Index, rules []Introduction, bound int) Names {
	names := Names{}
	if idx == nil {
		return names
	}
	if bound <= 0 {
		bound = DefaultNameIntroductionWordBound
	}

	scripts := make(map[string][]string)
	for i := 0; i < idx.WordCount(); i++ {
		tok := idx.Word(i)
		scripts[tok.Speaker] = append(scripts[tok.Speaker], textutil.NormalizeWords(tok.Text)...)
	}

	title := cases.Title(language.Und)
	for _, speaker := range idx.Speakers() {
		words := scripts[speaker]
		for _, rule := range rules {
			phrase := textutil.NormalizeWords(rule.Phrase)
			if len(phrase) == 0 {
				continue
			}
			if name, ok := introducedName(words, phrase, rule.Explicit, bound); ok {
				names[speaker] = title.String(name)
				break
			}
		}
	}
	return names
}

func introducedName(words, phrase []string, explicit bool, bound int) (string, bool) {
	for _, at := range occurrences(words, phrase) {
		next := at + len(phrase)
		if next >= len(words) {
			continue
		}
		candidate := words[next]
		if explicit {
			return candidate, true
		}
		if next <= bound && isAlpha(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func occurrences(words, phrase []string) []int {
	var out []int
	for i := 0; i+len(phrase) <= len(words); i++ {
		if slices.Equal(words[i:i+len(phrase)], phrase) {
			out = append(out, i)
		}
	}
	return out
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
