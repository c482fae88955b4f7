package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and file location configuration.
type Paths struct {
	InputDir      string `toml:"input_dir"`
	SnapshotDir   string `toml:"snapshot_dir"`
	ArchiveDir    string `toml:"archive_dir"`
	DirectoryFile string `toml:"directory_file"`
	HistoryFile   string `toml:"history_file"`
	MappingFile   string `toml:"mapping_file"`
	LogDir        string `toml:"log_dir"`
	LockFile      string `toml:"lock_file"`
}

// Matching contains identity resolution thresholds and normalization settings.
type Matching struct {
	NameThreshold int      `toml:"name_threshold"`
	RelaxedMargin int      `toml:"relaxed_margin"`
	RelaxedFloor  int      `toml:"relaxed_floor"`
	PhoneRegion   string   `toml:"phone_region"`
	LinkDomains   []string `toml:"link_domains"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for rollcall.
//
// Configuration sections by subsystem:
//   - Paths: input, snapshot, and archive locations plus durable files
//   - Matching: name similarity thresholds, phone region, URL domains
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Matching Matching `toml:"matching"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/rollcall/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/rollcall/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("rollcall.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// RelaxedNameThreshold derives the name-only tier threshold from the primary
// threshold, never dropping below the configured floor.
func (c *Config) RelaxedNameThreshold() int {
	relaxed := c.Matching.NameThreshold - c.Matching.RelaxedMargin
	if relaxed < c.Matching.RelaxedFloor {
		return c.Matching.RelaxedFloor
	}
	return relaxed
}

// EnsureDirectories creates the directories a batch run writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.InputDir, c.Paths.SnapshotDir, c.Paths.ArchiveDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if dir := filepath.Dir(c.Paths.LockFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
