package questions

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sample_questions.yaml
var sampleQuestions string

// Columns maps raw CSV headers onto the logical contact columns.
// Candidate lists are matched against normalized headers exactly,
// case-insensitively; Aliases rewrite whole headers before matching.
type Columns struct {
	Aliases  map[string]string `yaml:"aliases"`
	Name     []string          `yaml:"name"`
	Email    []string          `yaml:"email"`
	Phone    []string          `yaml:"phone"`
	Status   []string          `yaml:"status"`
	LinkedIn []string          `yaml:"linkedin"`
	Ignore   []string          `yaml:"ignore"`
}

// Category names a note section and fixes where it renders relative to
// the other sections. Lower priority renders first.
type Category struct {
	Name     string `yaml:"name"`
	Priority int    `yaml:"priority"`
}

// Rule describes how answers to one survey question become note lines.
// Patterns are matched as case-insensitive substrings of the answer's
// column header. A nil Split means the value is split on commas.
type Rule struct {
	Patterns  []string          `yaml:"patterns"`
	Category  string            `yaml:"category"`
	Prefix    string            `yaml:"prefix"`
	Split     *bool             `yaml:"split"`
	Transform map[string]string `yaml:"transform"`
}

// EventType describes one kind of event the directory tracks.
// Identifiers are lowercase substrings looked for in input filenames;
// Questions lists the rule ids consulted for this event, in order.
type EventType struct {
	Tag         string   `yaml:"tag"`
	Name        string   `yaml:"name"`
	Identifiers []string `yaml:"identifiers"`
	Questions   []string `yaml:"questions"`
}

// DatePattern pairs a regular expression with the time layout used to
// parse whatever the expression matches.
type DatePattern struct {
	Pattern string `yaml:"pattern"`
	Layout  string `yaml:"layout"`

	re *regexp.Regexp
}

// Filename controls how event type and date are recovered from input
// file names.
type Filename struct {
	IgnoreWords  []string      `yaml:"ignore_words"`
	DatePatterns []DatePattern `yaml:"date_patterns"`
}

// Notes controls the rendered note block header. The template must
// contain {code} so headers can be parsed back into event codes.
type Notes struct {
	EventFormat string `yaml:"event_format"`
}

// Output controls derived identifiers. The event code template must
// contain {type} and {date}; {date} renders as YYYY-MM-DD.
type Output struct {
	EventCode string `yaml:"event_code"`
}

// Config is the full question mapping.
type Config struct {
	Columns    Columns         `yaml:"columns"`
	Categories []Category      `yaml:"categories"`
	Questions  map[string]Rule `yaml:"questions"`
	Events     []EventType     `yaml:"events"`
	Filename   Filename        `yaml:"filename"`
	Notes      Notes           `yaml:"notes"`
	Output     Output          `yaml:"output"`
}

// Load reads the mapping file at path, overlaying it on the built-in
// defaults. A missing file is not an error; the defaults are returned
// and the boolean reports whether the file existed.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	expanded := strings.TrimSpace(path)
	exists := false
	if expanded != "" {
		data, err := os.ReadFile(expanded)
		switch {
		case err == nil:
			exists = true
			data = trimUTF8BOM(data)
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, true, fmt.Errorf("parse mapping file %s: %w", expanded, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, false, fmt.Errorf("read mapping file %s: %w", expanded, err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		if exists {
			return nil, true, fmt.Errorf("invalid mapping file %s: %w", expanded, err)
		}
		return nil, false, err
	}
	return cfg, exists, nil
}

// Rule returns the rule registered under id.
func (c *Config) Rule(id string) (Rule, bool) {
	rule, ok := c.Questions[id]
	return rule, ok
}

// EventByTag returns the event type with the given tag.
func (c *Config) EventByTag(tag string) (EventType, bool) {
	want := strings.ToUpper(strings.TrimSpace(tag))
	for _, ev := range c.Events {
		if ev.Tag == want {
			return ev, true
		}
	}
	return EventType{}, false
}

// CategoriesByPriority returns the note categories ordered by ascending
// priority, ties broken by name.
func (c *Config) CategoriesByPriority() []Category {
	ordered := make([]Category, len(c.Categories))
	copy(ordered, c.Categories)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].Name < ordered[j].Name
	})
	return ordered
}

// Matches reports whether the header matches one of the rule's
// patterns.
func (r Rule) Matches(header string) bool {
	lowered := strings.ToLower(header)
	for _, pattern := range r.Patterns {
		if pattern != "" && strings.Contains(lowered, pattern) {
			return true
		}
	}
	return false
}

// SplitValues reports whether answer values are split on commas before
// rendering. Unset means split.
func (r Rule) SplitValues() bool {
	return r.Split == nil || *r.Split
}

// Lines renders one answer value into note lines. The transform table
// is consulted on the whole value before any comma splitting.
func (r Rule) Lines(value string) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if replacement, ok := r.Transform[trimmed]; ok {
		trimmed = replacement
	}

	parts := []string{trimmed}
	if r.SplitValues() && strings.Contains(trimmed, ",") {
		parts = strings.Split(trimmed, ",")
	}

	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lines = append(lines, r.Prefix+": "+part)
	}
	return lines
}

// Find returns the first substring of name matched by the pattern.
func (p *DatePattern) Find(name string) (string, bool) {
	if p.re == nil {
		return "", false
	}
	match := p.re.FindString(name)
	return match, match != ""
}

// CreateSample writes a commented sample mapping file to path.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create mapping directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleQuestions), 0o644); err != nil {
		return fmt.Errorf("write sample mapping: %w", err)
	}
	return nil
}

func trimUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
