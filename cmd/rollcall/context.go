package main

import (
	"fmt"
	"log/slog"

	"rollcall/internal/config"
	"rollcall/internal/logging"
	"rollcall/internal/questions"
)

// commandContext carries lazily-loaded shared state between commands:
// the application config and the question mapping, each loaded once.
type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	cfg       *config.Config
	cfgPath   string
	cfgExists bool

	mapping *questions.Config
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{configFlag: configFlag, verboseFlag: verboseFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, resolvedPath, exists, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg
	c.cfgPath = resolvedPath
	c.cfgExists = exists
	return cfg, nil
}

func (c *commandContext) ensureMapping() (*questions.Config, error) {
	if c.mapping != nil {
		return c.mapping, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	mapping, _, err := questions.Load(cfg.Paths.MappingFile)
	if err != nil {
		return nil, fmt.Errorf("load mapping: %w", err)
	}
	c.mapping = mapping
	return mapping, nil
}

func (c *commandContext) newLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if c.verboseFlag != nil && *c.verboseFlag {
		verbose := *cfg
		verbose.Logging.Level = "debug"
		return logging.NewFromConfig(&verbose)
	}
	return logging.NewFromConfig(cfg)
}
