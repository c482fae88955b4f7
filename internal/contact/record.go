package contact

import (
	"strings"
	"unicode"
)

// Record is one row of an event export after column resolution: the
// core contact columns plus every surviving survey answer keyed by its
// header.
type Record struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	Approval Approval
	Answers  map[string]string
}

// FirstName returns the name's first token.
func (r Record) FirstName() string {
	first, _ := SplitName(r.Name)
	return first
}

// LastName returns everything after the first token.
func (r Record) LastName() string {
	_, last := SplitName(r.Name)
	return last
}

// SplitName divides a full name at the first whitespace run. Middle
// names stay with the last name.
func SplitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	i := strings.IndexFunc(full, unicode.IsSpace)
	if i < 0 {
		return full, ""
	}
	return full[:i], strings.TrimSpace(full[i:])
}
