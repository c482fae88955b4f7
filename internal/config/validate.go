package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	required := []struct {
		key   string
		value string
	}{
		{"paths.input_dir", c.Paths.InputDir},
		{"paths.snapshot_dir", c.Paths.SnapshotDir},
		{"paths.archive_dir", c.Paths.ArchiveDir},
		{"paths.directory_file", c.Paths.DirectoryFile},
		{"paths.history_file", c.Paths.HistoryFile},
		{"paths.mapping_file", c.Paths.MappingFile},
		{"paths.lock_file", c.Paths.LockFile},
	}
	for _, entry := range required {
		if entry.value == "" {
			return fmt.Errorf("%s must be set", entry.key)
		}
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.NameThreshold < 1 || c.Matching.NameThreshold > 100 {
		return errors.New("matching.name_threshold must be between 1 and 100")
	}
	if c.Matching.RelaxedMargin < 0 {
		return errors.New("matching.relaxed_margin must not be negative")
	}
	if c.Matching.RelaxedFloor < 1 || c.Matching.RelaxedFloor > 100 {
		return errors.New("matching.relaxed_floor must be between 1 and 100")
	}
	if len(c.Matching.PhoneRegion) != 2 {
		return fmt.Errorf("matching.phone_region must be a two-letter region code, got %q", c.Matching.PhoneRegion)
	}
	if len(c.Matching.LinkDomains) == 0 {
		return errors.New("matching.link_domains must list at least one domain")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
