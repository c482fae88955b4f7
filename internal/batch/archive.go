package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rollcall/internal/contact"
)

// writeDeclined writes the event's non-approved rows to the archive
// file as "name, email, phone, STATUS" lines. Missing fields render as
// placeholders so the columns stay readable.
func writeDeclined(path string, records []contact.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create archive directory: %w", err)
	}

	var b strings.Builder
	for _, rec := range records {
		b.WriteString(orPlaceholder(rec.Name, "No Name"))
		b.WriteString(", ")
		b.WriteString(orPlaceholder(rec.Email, "No Email"))
		b.WriteString(", ")
		b.WriteString(orPlaceholder(rec.Phone, "No Phone"))
		b.WriteString(", ")
		b.WriteString(strings.ToUpper(rec.Approval.String()))
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write declined archive: %w", err)
	}
	return nil
}

func orPlaceholder(value, placeholder string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return placeholder
	}
	return value
}
