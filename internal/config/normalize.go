package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.InputDir, err = expandPath(c.Paths.InputDir); err != nil {
		return fmt.Errorf("paths.input_dir: %w", err)
	}
	if c.Paths.SnapshotDir, err = expandPath(c.Paths.SnapshotDir); err != nil {
		return fmt.Errorf("paths.snapshot_dir: %w", err)
	}
	if c.Paths.ArchiveDir, err = expandPath(c.Paths.ArchiveDir); err != nil {
		return fmt.Errorf("paths.archive_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.LockFile, err = expandPath(c.Paths.LockFile); err != nil {
		return fmt.Errorf("paths.lock_file: %w", err)
	}
	if c.Paths.MappingFile, err = expandPath(c.Paths.MappingFile); err != nil {
		return fmt.Errorf("paths.mapping_file: %w", err)
	}

	// The master directory and history ledger default to living beside the
	// per-event snapshots.
	if strings.TrimSpace(c.Paths.DirectoryFile) == "" {
		c.Paths.DirectoryFile = filepath.Join(c.Paths.SnapshotDir, defaultDirectoryName)
	}
	if c.Paths.DirectoryFile, err = expandPath(c.Paths.DirectoryFile); err != nil {
		return fmt.Errorf("paths.directory_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.HistoryFile) == "" {
		c.Paths.HistoryFile = filepath.Join(c.Paths.SnapshotDir, defaultHistoryName)
	}
	if c.Paths.HistoryFile, err = expandPath(c.Paths.HistoryFile); err != nil {
		return fmt.Errorf("paths.history_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeMatching() {
	if c.Matching.NameThreshold == 0 {
		c.Matching.NameThreshold = defaultNameThreshold
	}
	if c.Matching.RelaxedMargin == 0 {
		c.Matching.RelaxedMargin = defaultRelaxedMargin
	}
	if c.Matching.RelaxedFloor == 0 {
		c.Matching.RelaxedFloor = defaultRelaxedFloor
	}
	c.Matching.PhoneRegion = strings.ToUpper(strings.TrimSpace(c.Matching.PhoneRegion))
	if c.Matching.PhoneRegion == "" {
		c.Matching.PhoneRegion = defaultPhoneRegion
	}
	domains := make([]string, 0, len(c.Matching.LinkDomains))
	for _, domain := range c.Matching.LinkDomains {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if domain != "" {
			domains = append(domains, domain)
		}
	}
	if len(domains) == 0 {
		domains = defaultLinkDomains()
	}
	c.Matching.LinkDomains = domains
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
