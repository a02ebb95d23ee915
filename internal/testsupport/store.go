package testsupport

import (
	"context"
	"testing"

	"scribe/internal/catalog"
	"scribe/internal/config"
	"scribe/internal/logging"
)

// MustOpenCatalog opens a catalog.Store for tests and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustImport stores a fixture transcript under job.
func MustImport(t testing.TB, store *catalog.Store, job string, words ...Word) *catalog.Entry {
	t.Helper()

	entry, err := store.Import(context.Background(), job, Document(words...), catalog.ImportOptions{})
	if err != nil {
		t.Fatalf("store.Import: %v", err)
	}
	return entry
}
