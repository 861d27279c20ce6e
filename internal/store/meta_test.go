package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mlahtinen/savekeeper/internal/domain"
)

func TestMetaRoundTrip(t *testing.T) {
	dir := t.TempDir()

	want := domain.Meta{
		Name:      "boss-fight",
		CreatedAt: time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC),
		Source:    domain.SourceImport,
	}
	if err := writeMeta(dir, want); err != nil {
		t.Fatalf("writeMeta: %v", err)
	}

	got, err := readMeta(dir)
	if err != nil {
		t.Fatalf("readMeta: %v", err)
	}
	if got.Name != want.Name || !got.CreatedAt.Equal(want.CreatedAt) || got.Source != want.Source {
		t.Fatalf("round trip mismatch: %+v != %+v", got, want)
	}

	// The atomic write leaves no temp file behind.
	if _, err := os.Stat(metaFile(dir) + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp marker file left behind")
	}
}

func TestMetaSurvivesCollectionMove(t *testing.T) {
	parent := t.TempDir()
	src := filepath.Join(parent, "saves", "x")
	dst := filepath.Join(parent, "trash", "x")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	want := domain.Meta{Name: "x", CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), Source: domain.SourceLive}
	if err := writeMeta(src, want); err != nil {
		t.Fatalf("writeMeta: %v", err)
	}
	if err := os.Rename(src, dst); err != nil {
		t.Fatalf("rename: %v", err)
	}

	got, err := readMeta(dst)
	if err != nil {
		t.Fatalf("readMeta after move: %v", err)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("CreatedAt changed across move: %v != %v", got.CreatedAt, want.CreatedAt)
	}
}

func TestReadMetaMissing(t *testing.T) {
	if _, err := readMeta(t.TempDir()); err == nil {
		t.Fatal("expected error for missing marker")
	}
}
