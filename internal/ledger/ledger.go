// Package ledger tracks which exports a batch has already folded into
// the directory, so re-running over the same inbox is a no-op.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"rollcall/internal/logging"
)

type state struct {
	ProcessedFiles     []string  `json:"processed_files"`
	ProcessedSnapshots []string  `json:"processed_snapshots"`
	LastUpdate         time.Time `json:"last_update"`
}

// Ledger is the durable processing history. Files are tracked by base
// name, so moving the inbox does not cause reprocessing.
type Ledger struct {
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	state state
}

// Open loads the ledger at path. A missing file starts an empty
// ledger; an unreadable or corrupt one also starts empty with a
// warning, matching the recovery story of the directory snapshot.
func Open(path string, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = logging.NewNop()
	}
	l := &Ledger{
		path:   path,
		logger: logging.NewComponentLogger(logger, "ledger"),
	}

	if path == "" {
		return l
	}
	if err := l.load(); err != nil {
		l.logger.Warn("could not load processing history, starting empty",
			logging.Error(err),
			logging.String("path", path),
			logging.String(logging.FieldErrorHint, "already-processed exports may be merged again; merges are idempotent"))
		l.state = state{}
	}
	return l
}

// HasFile reports whether an export with this base name was already
// processed.
func (l *Ledger) HasFile(name string) bool {
	name = filepath.Base(name)

	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, file := range l.state.ProcessedFiles {
		if file == name {
			return true
		}
	}
	return false
}

// RecordFile marks an export as processed and persists the ledger.
// Recording the same name twice keeps one entry.
func (l *Ledger) RecordFile(name string) error {
	name = filepath.Base(name)

	l.mu.Lock()
	defer l.mu.Unlock()
	if !containsString(l.state.ProcessedFiles, name) {
		l.state.ProcessedFiles = append(l.state.ProcessedFiles, name)
	}
	return l.save()
}

// RecordSnapshot marks a per-event snapshot as written and persists
// the ledger.
func (l *Ledger) RecordSnapshot(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !containsString(l.state.ProcessedSnapshots, path) {
		l.state.ProcessedSnapshots = append(l.state.ProcessedSnapshots, path)
	}
	return l.save()
}

// Files returns the processed export names in processing order.
func (l *Ledger) Files() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.state.ProcessedFiles))
	copy(out, l.state.ProcessedFiles)
	return out
}

// Snapshots returns the recorded per-event snapshot paths.
func (l *Ledger) Snapshots() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.state.ProcessedSnapshots))
	copy(out, l.state.ProcessedSnapshots)
	return out
}

// LastUpdate returns when the ledger was last written. Zero for a
// ledger that has never been saved.
func (l *Ledger) LastUpdate() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.LastUpdate
}

func (l *Ledger) load() error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read history: %w", err)
	}
	data = trimUTF8BOM(data)
	if len(data) == 0 {
		return nil
	}

	var loaded state
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse history: %w", err)
	}
	l.state = loaded
	l.logger.Debug("loaded processing history",
		logging.Int("files", len(loaded.ProcessedFiles)),
		logging.String("path", l.path))
	return nil
}

// save assumes the caller holds the write lock.
func (l *Ledger) save() error {
	if l.path == "" {
		return nil
	}
	l.state.LastUpdate = time.Now().UTC()

	data, err := json.MarshalIndent(l.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	tmpPath := l.path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp history: %w", err)
	}
	if err := os.Rename(tmpPath, l.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp history: %w", err)
	}
	return nil
}

func containsString(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}

func trimUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
