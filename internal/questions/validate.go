package questions

import (
	"fmt"
	"regexp"
	"strings"
)

// Validate checks the mapping for the mistakes that would otherwise
// surface as silently dropped note lines, and compiles the filename
// date patterns.
func (c *Config) Validate() error {
	if err := c.validateColumns(); err != nil {
		return err
	}
	if err := c.validateCategories(); err != nil {
		return err
	}
	if err := c.validateQuestions(); err != nil {
		return err
	}
	if err := c.validateEvents(); err != nil {
		return err
	}
	if err := c.validateFilename(); err != nil {
		return err
	}
	return c.validateTemplates()
}

func (c *Config) validateColumns() error {
	if len(c.Columns.Name) == 0 {
		return fmt.Errorf("columns.name requires at least one header candidate")
	}
	if len(c.Columns.Email) == 0 {
		return fmt.Errorf("columns.email requires at least one header candidate")
	}
	return nil
}

func (c *Config) validateCategories() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("categories requires at least one entry")
	}
	seen := make(map[string]struct{}, len(c.Categories))
	for _, category := range c.Categories {
		if _, dup := seen[category.Name]; dup {
			return fmt.Errorf("categories lists %s more than once", category.Name)
		}
		seen[category.Name] = struct{}{}
	}
	return nil
}

func (c *Config) validateQuestions() error {
	categories := make(map[string]struct{}, len(c.Categories))
	for _, category := range c.Categories {
		categories[category.Name] = struct{}{}
	}
	for id, rule := range c.Questions {
		if len(rule.Patterns) == 0 {
			return fmt.Errorf("question %s requires at least one pattern", id)
		}
		if rule.Prefix == "" {
			return fmt.Errorf("question %s requires a prefix", id)
		}
		if rule.Category == "" {
			return fmt.Errorf("question %s requires a category", id)
		}
		if _, ok := categories[rule.Category]; !ok {
			return fmt.Errorf("question %s references unknown category %s", id, rule.Category)
		}
	}
	return nil
}

func (c *Config) validateEvents() error {
	if len(c.Events) == 0 {
		return fmt.Errorf("events requires at least one entry")
	}
	tags := make(map[string]struct{}, len(c.Events))
	for _, ev := range c.Events {
		if ev.Tag == "" {
			return fmt.Errorf("event %q requires a tag", ev.Name)
		}
		if _, dup := tags[ev.Tag]; dup {
			return fmt.Errorf("events lists tag %s more than once", ev.Tag)
		}
		tags[ev.Tag] = struct{}{}
		if ev.Name == "" {
			return fmt.Errorf("event %s requires a name", ev.Tag)
		}
		if len(ev.Identifiers) == 0 {
			return fmt.Errorf("event %s requires at least one filename identifier", ev.Tag)
		}
		for _, id := range ev.Questions {
			if _, ok := c.Questions[id]; !ok {
				return fmt.Errorf("event %s references unknown question %s", ev.Tag, id)
			}
		}
	}
	return nil
}

func (c *Config) validateFilename() error {
	if len(c.Filename.DatePatterns) == 0 {
		return fmt.Errorf("filename.date_patterns requires at least one entry")
	}
	for i := range c.Filename.DatePatterns {
		pattern := &c.Filename.DatePatterns[i]
		if pattern.Pattern == "" {
			return fmt.Errorf("filename.date_patterns[%d] requires a pattern", i)
		}
		if pattern.Layout == "" {
			return fmt.Errorf("filename.date_patterns[%d] requires a layout", i)
		}
		re, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			return fmt.Errorf("filename.date_patterns[%d]: %w", i, err)
		}
		pattern.re = re
	}
	return nil
}

func (c *Config) validateTemplates() error {
	// Headers must lead with the code so it can be read back out of
	// existing note blocks.
	if !strings.HasPrefix(c.Notes.EventFormat, "{code}") {
		return fmt.Errorf("notes.event_format must start with {code}")
	}
	if !strings.Contains(c.Output.EventCode, "{type}") || !strings.Contains(c.Output.EventCode, "{date}") {
		return fmt.Errorf("output.event_code must contain {type} and {date}")
	}
	return nil
}
