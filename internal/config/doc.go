// Package config loads, normalizes, and validates rollcall configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: input/snapshot/archive locations, identity matching
// thresholds, the phone region, and log output settings. The question and
// field mapping data lives in a separate YAML file owned by the questions
// package; config only records where to find it.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
