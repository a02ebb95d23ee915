package search

import (
	"math"
	"sort"
)

// boostedScore sorts a candidate ahead of every distance-scored one.
const boostedScore = math.MinInt32

// Rank deduplicates candidates by text (keeping the lowest distance), moves
// candidates equal to one of the query's words to the front, orders the rest
// by ascending distance with first-seen order breaking ties, and truncates the
// list to limit entries.
func Rank(q Query, candidates []Candidate, limit int) []Candidate {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	type scored struct {
		Candidate
		score int
	}
	positions := make(map[string]int, len(candidates))
	deduped := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if pos, ok := positions[c.Text]; ok {
			if c.Distance < deduped[pos].Distance {
				deduped[pos].Distance = c.Distance
			}
			continue
		}
		positions[c.Text] = len(deduped)
		deduped = append(deduped, scored{Candidate: c})
	}

	queryWords := make(map[string]struct{}, len(q.Words))
	for _, w := range q.Words {
		queryWords[w] = struct{}{}
	}
	for i := range deduped {
		deduped[i].score = deduped[i].Distance
		if _, ok := queryWords[deduped[i].Text]; ok {
			deduped[i].score = boostedScore
		}
	}

	sort.SliceStable(deduped, func(a, b int) bool {
		return deduped[a].score < deduped[b].score
	})

	if len(deduped) > limit {
		deduped = deduped[:limit]
	}
	out := make([]Candidate, len(deduped))
	for i, s := range deduped {
		out[i] = s.Candidate
	}
	return out
}
