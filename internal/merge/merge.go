// Package merge folds event records into directory identities.
//
// The rules are deliberately conservative: fields seen first win, new
// information only fills gaps, and an event leaves its mark on an
// identity exactly once. Applying the same record again is a no-op.
package merge

import (
	"strings"

	"log/slog"

	"rollcall/internal/contact"
	"rollcall/internal/event"
	"rollcall/internal/logging"
	"rollcall/internal/notes"
	"rollcall/internal/questions"
)

// Merger applies records to identities.
type Merger struct {
	mapping     *questions.Config
	linkDomains []string
	logger      *slog.Logger
}

// New returns a Merger. linkDomains are the accepted profile-link
// domains, e.g. linkedin.com.
func New(mapping *questions.Config, linkDomains []string, logger *slog.Logger) *Merger {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Merger{
		mapping:     mapping,
		linkDomains: linkDomains,
		logger:      logging.NewComponentLogger(logger, "merge"),
	}
}

// Apply merges a record observed at the given event into existing, or
// builds a fresh identity when existing is nil. The event's note block
// is appended even when no answers categorized, so membership stays
// readable from the notes alone.
func (m *Merger) Apply(existing *contact.Identity, rec contact.Record, desc event.Descriptor) *contact.Identity {
	if existing == nil {
		identity := &contact.Identity{
			Key:      contact.StableKey(rec.Email, rec.Name, desc.Code),
			Name:     rec.Name,
			Email:    strings.ToLower(strings.TrimSpace(rec.Email)),
			Phone:    rec.Phone,
			Approval: rec.Approval,
			Notes:    []notes.Block{notes.Build(desc, rec.Answers, m.mapping)},
		}
		if ValidLink(rec.LinkedIn, m.linkDomains) {
			identity.LinkedIn = rec.LinkedIn
		} else if rec.LinkedIn != "" {
			m.logger.Debug("dropping unusable profile link",
				logging.String(logging.FieldContact, identity.Key),
				logging.String("url", rec.LinkedIn))
		}
		return identity
	}

	// Name and email stay as first seen.
	if existing.Phone == "" && rec.Phone != "" {
		existing.Phone = rec.Phone
	}
	if existing.LinkedIn == "" && ValidLink(rec.LinkedIn, m.linkDomains) {
		existing.LinkedIn = rec.LinkedIn
	}
	if !existing.HasEvent(desc.Code) {
		existing.Notes = append(existing.Notes, notes.Build(desc, rec.Answers, m.mapping))
	}
	return existing
}

// ValidLink reports whether url looks like a usable profile link: an
// http or https scheme and one of the accepted domains somewhere in
// the text.
func ValidLink(url string, domains []string) bool {
	url = strings.ToLower(strings.TrimSpace(url))
	if !strings.HasPrefix(url, "http") {
		return false
	}
	for _, domain := range domains {
		if domain != "" && strings.Contains(url, domain) {
			return true
		}
	}
	return false
}
