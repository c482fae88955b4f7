// Package vcard reads and writes the narrow vCard 3.0 dialect the
// directory has always stored: N, FN, EMAIL, optional TEL, a work URL
// and a single-line NOTE, with a blank line between cards. Values are
// carried verbatim; nothing is escaped or folded.
package vcard

import (
	"strings"

	"rollcall/internal/contact"
)

const version = "3.0"

// Card is one vCard block.
type Card struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	Note     string
}

// Encode renders cards in the order given.
func Encode(cards []Card) []byte {
	var b strings.Builder
	for _, card := range cards {
		writeCard(&b, card)
	}
	return []byte(b.String())
}

// Decode parses every framed card out of data. Keys are matched
// case-insensitively with TYPE parameters ignored, key order inside a
// card does not matter, unknown keys are skipped, and content outside
// BEGIN/END framing is dropped. A card missing FN falls back to
// reassembling the name from N.
func Decode(data []byte) []Card {
	var cards []Card
	var fields map[string]string

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		switch {
		case strings.HasPrefix(line, "BEGIN:VCARD"):
			fields = make(map[string]string)
		case strings.HasPrefix(line, "END:VCARD"):
			if fields != nil {
				cards = append(cards, cardFromFields(fields))
				fields = nil
			}
		default:
			if fields == nil {
				continue
			}
			key, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			if i := strings.IndexByte(key, ';'); i >= 0 {
				key = key[:i]
			}
			fields[strings.ToLower(strings.TrimSpace(key))] = value
		}
	}
	return cards
}

func writeCard(b *strings.Builder, card Card) {
	first, last := contact.SplitName(card.Name)

	b.WriteString("BEGIN:VCARD\n")
	b.WriteString("VERSION:" + version + "\n")
	b.WriteString("N:" + last + ";" + first + ";;;\n")
	b.WriteString("FN:" + card.Name + "\n")
	b.WriteString("EMAIL:" + card.Email + "\n")
	if card.Phone != "" {
		b.WriteString("TEL:" + card.Phone + "\n")
	}
	if card.LinkedIn != "" {
		b.WriteString("URL;TYPE=WORK:" + card.LinkedIn + "\n")
	}
	if card.Note != "" {
		b.WriteString("NOTE:" + card.Note + "\n")
	}
	b.WriteString("END:VCARD\n\n")
}

func cardFromFields(fields map[string]string) Card {
	card := Card{
		Name:     strings.TrimSpace(fields["fn"]),
		Email:    strings.ToLower(strings.TrimSpace(fields["email"])),
		Phone:    strings.TrimSpace(fields["tel"]),
		LinkedIn: strings.TrimSpace(fields["url"]),
		Note:     strings.TrimSpace(fields["note"]),
	}
	if card.Name == "" {
		var first, last string
		parts := strings.Split(fields["n"], ";")
		if len(parts) > 0 {
			last = strings.TrimSpace(parts[0])
		}
		if len(parts) > 1 {
			first = strings.TrimSpace(parts[1])
		}
		card.Name = strings.TrimSpace(first + " " + last)
	}
	return card
}
