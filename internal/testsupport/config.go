// Package testsupport provides shared builders for rollcall tests:
// configs backed by per-test temp directories and CSV export fixtures.
package testsupport

import (
	"path/filepath"
	"testing"

	"rollcall/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose every path points into a unique
// temp directory for the test, with the repository matching defaults.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.InputDir = filepath.Join(base, "inbox")
	cfg.Paths.SnapshotDir = filepath.Join(base, "snapshots")
	cfg.Paths.ArchiveDir = filepath.Join(base, "archive")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.LockFile = filepath.Join(base, "rollcall.lock")
	cfg.Paths.MappingFile = filepath.Join(base, "questions.yaml")
	cfg.Paths.DirectoryFile = filepath.Join(cfg.Paths.SnapshotDir, "master_contacts.vcf")
	cfg.Paths.HistoryFile = filepath.Join(cfg.Paths.SnapshotDir, "contact_history.json")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithNameThreshold overrides the primary name-similarity threshold.
func WithNameThreshold(threshold int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.NameThreshold = threshold
	}
}

// WithPhoneRegion overrides the default phone parsing region.
func WithPhoneRegion(region string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.PhoneRegion = region
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.InputDir)
}
