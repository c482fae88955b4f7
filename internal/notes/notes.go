// Package notes renders and parses the per-event note blocks carried
// in a contact's NOTE field.
//
// The whole history packs into one physical line. Lines inside a block
// are joined with two spaces, blocks are joined with five dashes, and
// every block opens with an "EVENT: " header whose text starts with
// the event code. Parse and Render are inverses over well-formed text.
package notes

import (
	"sort"
	"strings"

	"rollcall/internal/event"
	"rollcall/internal/questions"
)

const (
	headerPrefix   = "EVENT: "
	lineSeparator  = "  "
	blockSeparator = "-----"
	rolePrefix     = "ROLE:"
)

// Block is one event's worth of note lines.
type Block struct {
	Header string
	Lines  []string
}

// Code returns the event code embedded in the header, the text before
// the first space.
func (b Block) Code() string {
	if i := strings.IndexByte(b.Header, ' '); i >= 0 {
		return b.Header[:i]
	}
	return b.Header
}

// Build renders one event's answers into a categorized block. Each
// question claims at most one answer column; lines are deduplicated
// within their category and ordered by category priority, role lines
// ahead of everything else in theirs. Answers that match no question
// are left out.
func Build(desc event.Descriptor, answers map[string]string, mapping *questions.Config) Block {
	block := Block{Header: header(desc, mapping)}
	if len(answers) == 0 {
		return block
	}

	keys := make([]string, 0, len(answers))
	for key := range answers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	byCategory := make(map[string]map[string]struct{})
	for _, id := range desc.Questions {
		rule, ok := mapping.Rule(id)
		if !ok {
			continue
		}
		value, ok := firstAnswer(rule, keys, answers)
		if !ok {
			continue
		}
		set := byCategory[rule.Category]
		if set == nil {
			set = make(map[string]struct{})
			byCategory[rule.Category] = set
		}
		for _, line := range rule.Lines(value) {
			set[collapseSpaces(line)] = struct{}{}
		}
	}

	for _, category := range mapping.CategoriesByPriority() {
		block.Lines = append(block.Lines, orderCategory(byCategory[category.Name])...)
	}
	return block
}

// Render serializes blocks into the single-line wire form. Blocks
// without a header are skipped.
func Render(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.Header == "" {
			continue
		}
		fields := append([]string{headerPrefix + block.Header}, block.Lines...)
		parts = append(parts, strings.Join(fields, lineSeparator))
	}
	return strings.Join(parts, blockSeparator)
}

// Parse splits note text back into blocks. Text before the first
// header is dropped. Headers are recognized anywhere, so histories
// written with older separator conventions still parse.
func Parse(text string) []Block {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var blocks []Block
	for _, chunk := range strings.Split(text, blockSeparator) {
		for _, segment := range strings.Split(chunk, lineSeparator) {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}
			if strings.HasPrefix(segment, headerPrefix) {
				header := strings.TrimSpace(strings.TrimPrefix(segment, headerPrefix))
				blocks = append(blocks, Block{Header: header})
				continue
			}
			if len(blocks) == 0 {
				continue
			}
			current := &blocks[len(blocks)-1]
			current.Lines = append(current.Lines, segment)
		}
	}
	return blocks
}

func header(desc event.Descriptor, mapping *questions.Config) string {
	text := strings.NewReplacer(
		"{code}", desc.Code,
		"{name}", desc.Name,
		"{date}", desc.Date.Format("2006-01-02"),
	).Replace(mapping.Notes.EventFormat)
	return collapseSpaces(text)
}

func firstAnswer(rule questions.Rule, keys []string, answers map[string]string) (string, bool) {
	for _, pattern := range rule.Patterns {
		for _, key := range keys {
			if strings.Contains(strings.ToLower(key), pattern) {
				return answers[key], true
			}
		}
	}
	return "", false
}

func orderCategory(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	roles := make([]string, 0, len(set))
	rest := make([]string, 0, len(set))
	for line := range set {
		if strings.HasPrefix(line, rolePrefix) {
			roles = append(roles, line)
		} else {
			rest = append(rest, line)
		}
	}
	sort.Strings(roles)
	sort.Strings(rest)
	return append(roles, rest...)
}

// collapseSpaces folds whitespace runs to single spaces. The wire
// format reserves double spaces as the line separator.
func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
