package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// WriteRoster writes a CSV export fixture under dir and returns its
// path. The file name matters: event type and date are parsed from it.
func WriteRoster(t testing.TB, dir, name string, headers []string, rows [][]string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		t.Fatalf("write headers: %v", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		t.Fatalf("flush %s: %v", path, err)
	}
	return path
}

// RegistrationHeaders is the header row shared by most fixtures: the
// core contact columns plus one survey question per note category.
func RegistrationHeaders() []string {
	return []string{
		"name", "email", "phone_number", "approval_status",
		"What is your LinkedIn profile?",
		"What best describes you?",
		"What are your interests?",
	}
}
