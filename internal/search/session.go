package search

import (
	"context"
	"errors"
	"fmt"

	"scribe/internal/transcript"
)

var (
	// ErrInvalidSuggestionSelection reports a suggestion number outside the
	// offered range. The session stays in StateAwaitingChoice.
	ErrInvalidSuggestionSelection = errors.New("invalid suggestion selection")
	// ErrSessionClosed reports a call on a session that already reached
	// StateFound or StateCancelled.
	ErrSessionClosed = errors.New("search session closed")
	// ErrEmptyQuery reports a query with no searchable words.
	ErrEmptyQuery = errors.New("empty query")
	// ErrNoPendingChoice reports Choose outside StateAwaitingChoice.
	ErrNoPendingChoice = errors.New("no suggestions awaiting a choice")
)

// State is a step of the interactive retry loop.
type State int

const (
	StateSearching State = iota
	StateFound
	StateNoMatch
	StateSuggesting
	StateAwaitingChoice
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StateFound:
		return "found"
	case StateNoMatch:
		return "no_match"
	case StateSuggesting:
		return "suggesting"
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// OutcomeKind tags the result of one session round.
type OutcomeKind int

const (
	OutcomeFound OutcomeKind = iota
	OutcomeSuggestions
	OutcomeCancelled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFound:
		return "found"
	case OutcomeSuggestions:
		return "suggestions"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the tagged result of one round. Suggestions may be empty when
// nothing of the same length was close enough.
type Outcome struct {
	Kind        OutcomeKind
	Query       Query
	Matches     []Match
	Suggestions []Candidate
}

// Session drives one query round of the retry loop against a fixed index.
// It is not safe for concurrent use.
type Session struct {
	engine      *Engine
	index       *transcript.Index
	state       State
	query       Query
	suggestions []Candidate
}

// NewSession starts a session in StateSearching.
func NewSession(engine *Engine, idx *transcript.Index) *Session {
	if engine == nil {
		engine = NewEngine(DefaultOptions())
	}
	return &Session{engine: engine, index: idx, state: StateSearching}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Query returns the most recently searched query.
func (s *Session) Query() Query {
	return s.query
}

// Suggestions returns the suggestions awaiting a choice.
func (s *Session) Suggestions() []Candidate {
	out := make([]Candidate, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// Submit searches for text. Cancellation is only observed here, before the
// scan starts; a scan always runs to completion.
func (s *Session) Submit(ctx context.Context, text string) (Outcome, error) {
	if s.closed() {
		return Outcome{}, ErrSessionClosed
	}
	if ctx != nil && ctx.Err() != nil {
		return s.Cancel(), nil
	}
	q := ParseQuery(text)
	if q.Empty() {
		return Outcome{}, fmt.Errorf("search %q: %w", text, ErrEmptyQuery)
	}

	s.state = StateSearching
	s.query = q
	s.suggestions = nil

	res := s.engine.Find(s.index, q)
	if res.Found() {
		s.state = StateFound
		return Outcome{Kind: OutcomeFound, Query: q, Matches: res.Matches}, nil
	}

	// NoMatch and Suggesting are transient: ranking cannot fail, so the
	// round settles in AwaitingChoice even when no suggestions exist.
	s.suggestions = s.engine.Suggest(res)
	s.state = StateAwaitingChoice
	return Outcome{Kind: OutcomeSuggestions, Query: q, Suggestions: s.Suggestions()}, nil
}

// Choose searches for the n-th (one-based) pending suggestion.
func (s *Session) Choose(ctx context.Context, n int) (Outcome, error) {
	if s.closed() {
		return Outcome{}, ErrSessionClosed
	}
	if s.state != StateAwaitingChoice {
		return Outcome{}, ErrNoPendingChoice
	}
	if ctx != nil && ctx.Err() != nil {
		return s.Cancel(), nil
	}
	if n < 1 || n > len(s.suggestions) {
		return Outcome{}, fmt.Errorf("choose %d of %d: %w", n, len(s.suggestions), ErrInvalidSuggestionSelection)
	}
	return s.Submit(ctx, s.suggestions[n-1].Text)
}

// Cancel ends the round.
func (s *Session) Cancel() Outcome {
	s.state = StateCancelled
	s.suggestions = nil
	return Outcome{Kind: OutcomeCancelled, Query: s.query}
}

func (s *Session) closed() bool {
	return s.state == StateFound || s.state == StateCancelled
}
