package questions

import "strings"

func (c *Config) normalize() {
	c.normalizeColumns()
	c.normalizeCategories()
	c.normalizeQuestions()
	c.normalizeEvents()
	c.normalizeFilename()
	c.normalizeTemplates()
}

func (c *Config) normalizeColumns() {
	// An empty replacement strips the aliased text outright.
	aliases := make(map[string]string, len(c.Columns.Aliases))
	for raw, canonical := range c.Columns.Aliases {
		key := strings.ToLower(strings.TrimSpace(raw))
		if key == "" {
			continue
		}
		aliases[key] = strings.ToLower(strings.TrimSpace(canonical))
	}
	c.Columns.Aliases = aliases

	c.Columns.Name = cleanLowerList(c.Columns.Name)
	c.Columns.Email = cleanLowerList(c.Columns.Email)
	c.Columns.Phone = cleanLowerList(c.Columns.Phone)
	c.Columns.Status = cleanLowerList(c.Columns.Status)
	c.Columns.LinkedIn = cleanLowerList(c.Columns.LinkedIn)
	c.Columns.Ignore = cleanLowerList(c.Columns.Ignore)
}

func (c *Config) normalizeCategories() {
	cleaned := make([]Category, 0, len(c.Categories))
	for _, category := range c.Categories {
		category.Name = strings.ToUpper(strings.TrimSpace(category.Name))
		if category.Name == "" {
			continue
		}
		cleaned = append(cleaned, category)
	}
	c.Categories = cleaned
}

func (c *Config) normalizeQuestions() {
	normalized := make(map[string]Rule, len(c.Questions))
	for id, rule := range c.Questions {
		key := strings.ToLower(strings.TrimSpace(id))
		if key == "" {
			continue
		}
		rule.Patterns = cleanLowerList(rule.Patterns)
		rule.Category = strings.ToUpper(strings.TrimSpace(rule.Category))
		rule.Prefix = strings.TrimSuffix(strings.TrimSpace(rule.Prefix), ":")
		if len(rule.Transform) > 0 {
			transform := make(map[string]string, len(rule.Transform))
			for from, to := range rule.Transform {
				from = strings.TrimSpace(from)
				to = strings.TrimSpace(to)
				if from == "" || to == "" {
					continue
				}
				transform[from] = to
			}
			rule.Transform = transform
		}
		normalized[key] = rule
	}
	c.Questions = normalized
}

func (c *Config) normalizeEvents() {
	cleaned := make([]EventType, 0, len(c.Events))
	for _, ev := range c.Events {
		ev.Tag = strings.ToUpper(strings.TrimSpace(ev.Tag))
		ev.Name = strings.TrimSpace(ev.Name)
		ev.Identifiers = cleanLowerList(ev.Identifiers)
		ev.Questions = cleanLowerList(ev.Questions)
		cleaned = append(cleaned, ev)
	}
	c.Events = cleaned
}

func (c *Config) normalizeFilename() {
	c.Filename.IgnoreWords = cleanLowerList(c.Filename.IgnoreWords)

	patterns := make([]DatePattern, 0, len(c.Filename.DatePatterns))
	for _, pattern := range c.Filename.DatePatterns {
		pattern.Pattern = strings.TrimSpace(pattern.Pattern)
		pattern.Layout = strings.TrimSpace(pattern.Layout)
		if pattern.Pattern == "" && pattern.Layout == "" {
			continue
		}
		patterns = append(patterns, pattern)
	}
	c.Filename.DatePatterns = patterns
}

func (c *Config) normalizeTemplates() {
	c.Notes.EventFormat = strings.TrimSpace(c.Notes.EventFormat)
	if c.Notes.EventFormat == "" {
		c.Notes.EventFormat = defaultEventFormat
	}
	c.Output.EventCode = strings.TrimSpace(c.Output.EventCode)
	if c.Output.EventCode == "" {
		c.Output.EventCode = defaultEventCode
	}
}

func cleanLowerList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			continue
		}
		cleaned = append(cleaned, value)
	}
	return cleaned
}
