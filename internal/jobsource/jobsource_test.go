package jobsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/y123ash/Job-apply-AI-agent/internal/scrape"

	"go.uber.org/zap"
)

func newSource() *Source {
	return New(scrape.New(zap.NewNop()), zap.NewNop())
}

func TestResolveFromTextFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "backend-developer.txt")
	if err := os.WriteFile(path, []byte("Build Go services."), 0o644); err != nil {
		t.Fatalf("writing description file: %v", err)
	}

	posting, err := newSource().Resolve(context.Background(), path, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if posting.Title != "backend developer" {
		t.Fatalf("unexpected title from filename: %q", posting.Title)
	}
	if posting.Description != "Build Go services." {
		t.Fatalf("unexpected description: %q", posting.Description)
	}
	if posting.Link != "file://"+path {
		t.Fatalf("unexpected link: %q", posting.Link)
	}
}

func TestResolveOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "posting.txt")
	if err := os.WriteFile(path, []byte("Description."), 0o644); err != nil {
		t.Fatalf("writing description file: %v", err)
	}

	posting, err := newSource().Resolve(context.Background(), path, "Senior Developer", "Acme Corp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if posting.Title != "Senior Developer" || posting.Company != "Acme Corp" {
		t.Fatalf("overrides not applied: %+v", posting)
	}
}

func TestResolveEmptyDescription(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("   \n"), 0o644); err != nil {
		t.Fatalf("writing description file: %v", err)
	}

	if _, err := newSource().Resolve(context.Background(), path, "", ""); err == nil {
		t.Fatalf("expected an error for an empty description")
	}
}

func TestResolveEmptyReference(t *testing.T) {
	t.Parallel()

	if _, err := newSource().Resolve(context.Background(), "  ", "", ""); err == nil {
		t.Fatalf("expected an error for an empty reference")
	}
}

func TestResolveMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := newSource().Resolve(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), "", ""); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
