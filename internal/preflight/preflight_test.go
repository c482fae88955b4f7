package preflight_test

import (
	"os"
	"path/filepath"
	"testing"

	"rollcall/internal/preflight"
	"rollcall/internal/testsupport"
)

func TestRunAllPassesWithFreshConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	results := preflight.RunAll(cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 checks, got %d", len(results))
	}
	if !preflight.Passed(results) {
		t.Fatalf("expected all checks to pass, got %+v", results)
	}

	// The output directories should now exist.
	for _, dir := range []string{cfg.Paths.SnapshotDir, cfg.Paths.ArchiveDir, cfg.Paths.LogDir} {
		if _, err := os.Stat(dir); err != nil {
			t.Fatalf("expected %s created: %v", dir, err)
		}
	}
}

func TestCheckFileReadable(t *testing.T) {
	base := t.TempDir()

	missing := preflight.CheckFileReadable("Mapping file", filepath.Join(base, "questions.yaml"))
	if !missing.Passed {
		t.Fatalf("missing mapping file must pass, got %+v", missing)
	}

	path := filepath.Join(base, "present.yaml")
	if err := os.WriteFile(path, []byte("columns: {}\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	present := preflight.CheckFileReadable("Mapping file", path)
	if !present.Passed {
		t.Fatalf("readable mapping file must pass, got %+v", present)
	}

	dir := preflight.CheckFileReadable("Mapping file", base)
	if dir.Passed {
		t.Fatal("a directory must fail the file check")
	}
}

func TestCheckDirectoryWritableCreatesMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshots")
	result := preflight.CheckDirectoryWritable("Snapshot directory", path)
	if !result.Passed {
		t.Fatalf("expected pass with created directory, got %+v", result)
	}
}
