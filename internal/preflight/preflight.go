// Package preflight verifies that a batch can actually read its inputs
// and write its outputs before any merging starts.
package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"rollcall/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every check the configuration calls for. Output
// directories are created on the fly; a batch should not fail over a
// snapshot directory that simply does not exist yet.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	return []Result{
		CheckDirectoryWritable("Snapshot directory", cfg.Paths.SnapshotDir),
		CheckDirectoryWritable("Archive directory", cfg.Paths.ArchiveDir),
		CheckDirectoryWritable("Log directory", cfg.Paths.LogDir),
		CheckFileReadable("Mapping file", cfg.Paths.MappingFile),
	}
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// CheckDirectoryWritable verifies the directory exists (creating it if
// needed) and is readable and writable.
func CheckDirectoryWritable(name, path string) Result {
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: create: %v)", path, err)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFileReadable verifies the file is readable when it exists. A
// missing file passes: the mapping falls back to built-in defaults.
func CheckFileReadable(name, path string) Result {
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (absent, using defaults)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable)", path)}
}
