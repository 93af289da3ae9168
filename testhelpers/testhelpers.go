// Package testhelpers provides utilities for testing the PocketBase-based app.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"quotegen/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// The app holds no collections; it only carries the request pipeline. The
// temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	return app
}

// NewEditingStore returns a store with the given category already selected.
func NewEditingStore(t *testing.T, category string) *services.Store {
	t.Helper()

	store := services.NewStore()
	if err := store.Select(category); err != nil {
		t.Fatalf("failed to select category %q: %v", category, err)
	}
	return store
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
