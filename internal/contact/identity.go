package contact

import (
	"strings"

	"rollcall/internal/notes"
	"rollcall/internal/textutil"
)

// Identity is one resolved person accumulated across events. Name and
// email are fixed at first sight; phone and LinkedIn fill in later
// when earlier events left them empty; Notes grows one block per
// distinct event.
type Identity struct {
	Key      string
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	Approval Approval
	Notes    []notes.Block
}

// Events returns the event codes already merged in, oldest first.
func (id *Identity) Events() []string {
	codes := make([]string, 0, len(id.Notes))
	for _, block := range id.Notes {
		if code := block.Code(); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// HasEvent reports whether the event's block is already present.
func (id *Identity) HasEvent(code string) bool {
	for _, block := range id.Notes {
		if block.Code() == code {
			return true
		}
	}
	return false
}

// NoteText renders the accumulated history into the NOTE wire form.
func (id *Identity) NoteText() string {
	return notes.Render(id.Notes)
}

// StableKey returns the directory key for a contact: the email when
// present, otherwise a synthetic key tied to the first event seen.
func StableKey(email, name, code string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" {
		return email
	}
	return SyntheticKey(name, code)
}

// SyntheticKey builds a reproducible key for contacts without an
// email. Both parts survive a snapshot reload: the name comes back on
// the FN line and the code from the first note block.
func SyntheticKey(name, code string) string {
	return textutil.Slug(textutil.Fold(name)) + "|" + code
}
