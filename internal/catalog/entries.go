package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"scribe/internal/logging"
	"scribe/internal/transcript"
)

// Entry describes one imported transcript.
type Entry struct {
	ID           string    `json:"id"`
	JobName      string    `json:"job_name"`
	LanguageCode string    `json:"language_code,omitempty"`
	SpeakerCount int       `json:"speaker_count"`
	WordCount    int       `json:"word_count"`
	SourcePath   string    `json:"source_path,omitempty"`
	ImportedAt   time.Time `json:"imported_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ImportOptions control Import.
type ImportOptions struct {
	SourcePath string
	// Overwrite replaces an existing job with the same name.
	Overwrite bool
}

// timestampLayout is fixed-width so stored timestamps sort as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

const entryColumns = `id, job_name, language_code, speaker_count, word_count, source_path, imported_at, updated_at`

// NormalizeJobName trims a job name and replaces inner whitespace with
// underscores.
func NormalizeJobName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}

// Import validates doc by building its index and stores it under job.
func (s *Store) Import(ctx context.Context, job string, doc *transcript.Document, opts ImportOptions) (*Entry, error) {
	job = NormalizeJobName(job)
	if job == "" {
		return nil, ErrInvalidJobName
	}
	idx, err := transcript.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", job, err)
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	entry := &Entry{
		JobName:      job,
		LanguageCode: idx.LanguageCode(),
		SpeakerCount: len(idx.Speakers()),
		WordCount:    idx.WordCount(),
		SourcePath:   opts.SourcePath,
	}

	err = s.withWriteLock(ctx, func() error {
		existing, err := s.Get(ctx, job)
		switch {
		case errors.Is(err, ErrNotFound):
			return s.insert(ctx, entry, payload)
		case err != nil:
			return err
		case !opts.Overwrite:
			return fmt.Errorf("import %s: %w", job, ErrJobExists)
		default:
			entry.ID = existing.ID
			entry.ImportedAt = existing.ImportedAt
			return s.replace(ctx, entry, payload)
		}
	})
	if err != nil {
		return nil, err
	}

	logging.WithContext(logging.WithJob(ctx, job), s.logger).Info("transcript imported",
		logging.String("id", entry.ID),
		logging.Int("words", entry.WordCount),
		logging.Int("speakers", entry.SpeakerCount),
		logging.Bool("overwrite", opts.Overwrite),
	)
	return entry, nil
}

func (s *Store) insert(ctx context.Context, entry *Entry, payload []byte) error {
	now := time.Now().UTC()
	entry.ID = uuid.NewString()
	entry.ImportedAt = now
	entry.UpdatedAt = now
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO transcripts (`+entryColumns+`, document_json) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.ID,
			entry.JobName,
			nullableString(entry.LanguageCode),
			entry.SpeakerCount,
			entry.WordCount,
			nullableString(entry.SourcePath),
			entry.ImportedAt.Format(timestampLayout),
			entry.UpdatedAt.Format(timestampLayout),
			string(payload),
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("import %s: %w", entry.JobName, ErrJobExists)
		}
		if err != nil {
			return fmt.Errorf("insert transcript: %w", err)
		}
		return nil
	})
}

func (s *Store) replace(ctx context.Context, entry *Entry, payload []byte) error {
	entry.UpdatedAt = time.Now().UTC()
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`UPDATE transcripts
             SET language_code = ?, speaker_count = ?, word_count = ?, source_path = ?,
                 document_json = ?, updated_at = ?
             WHERE id = ?`,
			nullableString(entry.LanguageCode),
			entry.SpeakerCount,
			entry.WordCount,
			nullableString(entry.SourcePath),
			string(payload),
			entry.UpdatedAt.Format(timestampLayout),
			entry.ID,
		)
		if err != nil {
			return fmt.Errorf("update transcript: %w", err)
		}
		return nil
	})
}

// Get fetches a catalog entry by job name.
func (s *Store) Get(ctx context.Context, job string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM transcripts WHERE job_name = ?`, NormalizeJobName(job))
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", job, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get transcript: %w", err)
	}
	return entry, nil
}

// Document loads the stored transcription document for job.
func (s *Store) Document(ctx context.Context, job string) (*transcript.Document, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT document_json FROM transcripts WHERE job_name = ?`, NormalizeJobName(job)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", job, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	doc, err := transcript.Parse([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("decode stored transcript %s: %w", job, err)
	}
	return doc, nil
}

// Index loads job and builds its search index.
func (s *Store) Index(ctx context.Context, job string) (*transcript.Index, error) {
	doc, err := s.Document(ctx, job)
	if err != nil {
		return nil, err
	}
	return transcript.FromDocument(doc)
}

// List returns all entries ordered by import time.
func (s *Store) List(ctx context.Context) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM transcripts ORDER BY imported_at, job_name`)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcripts: %w", err)
	}
	return entries, nil
}

// Remove deletes job from the catalog.
func (s *Store) Remove(ctx context.Context, job string) error {
	job = NormalizeJobName(job)
	err := s.withWriteLock(ctx, func() error {
		var affected int64
		if err := retryOnBusy(ctx, func() error {
			res, err := s.db.ExecContext(ctx, `DELETE FROM transcripts WHERE job_name = ?`, job)
			if err != nil {
				return err
			}
			affected, err = res.RowsAffected()
			return err
		}); err != nil {
			return fmt.Errorf("delete transcript: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%s: %w", job, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logging.WithContext(logging.WithJob(ctx, job), s.logger).Info("transcript removed")
	return nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		entry       Entry
		language    sql.NullString
		source      sql.NullString
		importedRaw string
		updatedRaw  string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.JobName,
		&language,
		&entry.SpeakerCount,
		&entry.WordCount,
		&source,
		&importedRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}
	entry.LanguageCode = language.String
	entry.SourcePath = source.String
	if ts, err := time.Parse(timestampLayout, importedRaw); err == nil {
		entry.ImportedAt = ts
	}
	if ts, err := time.Parse(timestampLayout, updatedRaw); err == nil {
		entry.UpdatedAt = ts
	}
	return &entry, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
