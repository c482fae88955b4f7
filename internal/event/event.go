// Package event recovers which event an input file belongs to from
// nothing but its file name.
package event

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"rollcall/internal/questions"
)

var (
	// ErrUnknownEvent reports a file name matching no configured event type.
	ErrUnknownEvent = errors.New("file name matches no known event type")
	// ErrNoDate reports a file name with no recognizable date.
	ErrNoDate = errors.New("file name contains no recognizable date")
)

const dateLayout = "2006-01-02"

// Descriptor identifies one concrete event occurrence.
type Descriptor struct {
	Code      string
	Type      string
	Name      string
	Date      time.Time
	Questions []string
}

// Identify derives the event behind an input file. The date is read
// first with the configured patterns, then the name is matched against
// each event type's identifiers in configuration order after ignore
// words are stripped.
func Identify(filename string, mapping *questions.Config) (Descriptor, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	date, ok := extractDate(base, mapping)
	if !ok {
		return Descriptor{}, fmt.Errorf("identify %s: %w", filepath.Base(filename), ErrNoDate)
	}

	eventType, ok := matchType(base, mapping)
	if !ok {
		return Descriptor{}, fmt.Errorf("identify %s: %w", filepath.Base(filename), ErrUnknownEvent)
	}

	return Descriptor{
		Code:      renderCode(mapping.Output.EventCode, eventType.Tag, date),
		Type:      eventType.Tag,
		Name:      eventType.Name,
		Date:      date,
		Questions: eventType.Questions,
	}, nil
}

// SnapshotName returns the per-event snapshot file name,
// e.g. 2025-01-19_WY_snapshot.vcf.
func (d Descriptor) SnapshotName() string {
	return d.Date.Format(dateLayout) + "_" + d.Type + "_snapshot.vcf"
}

// DeclinedName returns the archive file name for rows that were not
// approved, e.g. 01-19-2025WY_declined.txt.
func (d Descriptor) DeclinedName() string {
	return d.Date.Format("01-02-2006") + d.Type + "_declined.txt"
}

func extractDate(base string, mapping *questions.Config) (time.Time, bool) {
	for i := range mapping.Filename.DatePatterns {
		pattern := &mapping.Filename.DatePatterns[i]
		match, ok := pattern.Find(base)
		if !ok {
			continue
		}
		// Collapse whitespace runs so "Jan  19 2025" still parses.
		cleaned := strings.Join(strings.Fields(match), " ")
		parsed, err := time.Parse(pattern.Layout, cleaned)
		if err != nil {
			continue
		}
		return parsed, true
	}
	return time.Time{}, false
}

func matchType(base string, mapping *questions.Config) (questions.EventType, bool) {
	lowered := strings.ToLower(base)
	for _, word := range mapping.Filename.IgnoreWords {
		lowered = strings.ReplaceAll(lowered, word, " ")
	}
	for _, eventType := range mapping.Events {
		for _, identifier := range eventType.Identifiers {
			if strings.Contains(lowered, identifier) {
				return eventType, true
			}
		}
	}
	return questions.EventType{}, false
}

func renderCode(template, tag string, date time.Time) string {
	return strings.NewReplacer(
		"{type}", tag,
		"{date}", date.Format(dateLayout),
	).Replace(template)
}
