package api

import (
	"context"
	"fmt"

	"scribe/internal/catalog"
	"scribe/internal/timeindex"
	"scribe/internal/transcript"
)

// TranscriptReader abstracts the catalog lookups needed for API queries.
type TranscriptReader interface {
	List(ctx context.Context) ([]*catalog.Entry, error)
	Get(ctx context.Context, job string) (*catalog.Entry, error)
	Index(ctx context.Context, job string) (*transcript.Index, error)
}

// TranscriptService exposes read-only catalog operations returning API DTOs.
type TranscriptService struct {
	store    TranscriptReader
	analyzer *Analyzer
}

// NewTranscriptService constructs a TranscriptService around the provided reader.
func NewTranscriptService(store TranscriptReader, analyzer *Analyzer) *TranscriptService {
	if store == nil {
		return nil
	}
	if analyzer == nil {
		analyzer = NewAnalyzer(nil)
	}
	return &TranscriptService{store: store, analyzer: analyzer}
}

// List returns every imported transcript.
func (s *TranscriptService) List(ctx context.Context) ([]Transcript, error) {
	if s == nil || s.store == nil {
		return nil, nil
	}
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return FromEntries(entries), nil
}

// Describe fetches a transcript with its speakers and segments.
func (s *TranscriptService) Describe(ctx context.Context, job string) (*TranscriptDetail, error) {
	entry, idx, err := s.load(ctx, job)
	if err != nil {
		return nil, err
	}
	detail := &TranscriptDetail{Transcript: FromEntry(entry)}
	detail.Speakers, detail.Segments = s.analyzer.Describe(idx)
	return detail, nil
}

// Search runs one search round against a job.
func (s *TranscriptService) Search(ctx context.Context, job, query string) (*SearchResult, error) {
	_, idx, err := s.load(ctx, job)
	if err != nil {
		return nil, err
	}
	res, err := s.analyzer.Search(idx, query)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// IndexRequest names the queries folded into a job's time index.
type IndexRequest struct {
	Job        string
	Queries    []string
	WatchWords []string
}

// Index builds the time index of a job.
func (s *TranscriptService) Index(ctx context.Context, req IndexRequest) (*IndexResult, error) {
	entry, idx, err := s.load(ctx, req.Job)
	if err != nil {
		return nil, err
	}
	x, missing, err := s.analyzer.BuildIndex(idx, req.Queries, req.WatchWords)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", entry.JobName, err)
	}
	return &IndexResult{
		Job:     entry.JobName,
		Title:   timeindex.ReportTitle(entry.JobName),
		Entries: FromIndex(x),
		Missing: missing,
	}, nil
}

func (s *TranscriptService) load(ctx context.Context, job string) (*catalog.Entry, *transcript.Index, error) {
	if s == nil || s.store == nil {
		return nil, nil, fmt.Errorf("transcript service not configured")
	}
	entry, err := s.store.Get(ctx, job)
	if err != nil {
		return nil, nil, err
	}
	idx, err := s.store.Index(ctx, entry.JobName)
	if err != nil {
		return nil, nil, err
	}
	return entry, idx, nil
}
