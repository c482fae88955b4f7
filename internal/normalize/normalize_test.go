package normalize_test

import (
	"testing"

	"rollcall/internal/contact"
	"rollcall/internal/normalize"
	"rollcall/internal/questions"
)

func newNormalizer(t *testing.T) *normalize.Normalizer {
	t.Helper()
	mapping, _, err := questions.Load("")
	if err != nil {
		t.Fatalf("load default mapping: %v", err)
	}
	return normalize.New(mapping, "US", nil)
}

func TestResolveColumns(t *testing.T) {
	n := newNormalizer(t)

	headers := []string{
		"\uFEFFName",
		"Email",
		"phone_number",
		"approval_status",
		"api_id",
		"🔗 What is your LinkedIn profile?",
		"What describes you best?",
		"Email Address",
	}
	cols := n.Resolve(headers)

	if cols.Name != 0 || cols.Email != 1 || cols.Phone != 2 || cols.Status != 3 {
		t.Fatalf("unexpected core columns %+v", cols)
	}
	if cols.LinkedIn != 5 {
		t.Fatalf("expected emoji header to resolve as linkedin, got %d", cols.LinkedIn)
	}
	if len(cols.Answers) != 1 {
		t.Fatalf("expected one answer column, got %v", cols.Answers)
	}
	if cols.Answers[6] != "what describes you best?" {
		t.Fatalf("unexpected answer header %q", cols.Answers[6])
	}
}

func TestRecordApprovedRow(t *testing.T) {
	n := newNormalizer(t)

	cols := n.Resolve([]string{"name", "email", "phone_number", "approval_status", "linkedin", "What describes you best?"})
	rec := n.Record(cols, []string{
		" Jane Doe ",
		"Jane@Example.COM",
		"(212) 555-0123",
		"approved",
		"https://linkedin.com/in/janedoe",
		"Founder",
	})

	if rec.Name != "Jane Doe" {
		t.Fatalf("unexpected name %q", rec.Name)
	}
	if rec.Email != "jane@example.com" {
		t.Fatalf("expected email lower-cased, got %q", rec.Email)
	}
	if rec.Phone != "+12125550123" {
		t.Fatalf("expected E.164 phone, got %q", rec.Phone)
	}
	if rec.LinkedIn != "https://linkedin.com/in/janedoe" {
		t.Fatalf("unexpected linkedin %q", rec.LinkedIn)
	}
	if rec.Approval != contact.ApprovalApproved {
		t.Fatalf("unexpected approval %q", rec.Approval)
	}
	if rec.Answers["what describes you best?"] != "Founder" {
		t.Fatalf("unexpected answers %v", rec.Answers)
	}
}

func TestRecordNonApprovedKeepsMinimum(t *testing.T) {
	n := newNormalizer(t)

	cols := n.Resolve([]string{"name", "email", "phone_number", "approval_status", "linkedin", "What describes you best?"})
	rec := n.Record(cols, []string{
		"John Роу",
		"john@example.com",
		"not a number",
		"declined",
		"https://linkedin.com/in/john",
		"Investor",
	})

	if rec.Approval != contact.ApprovalDeclined {
		t.Fatalf("unexpected approval %q", rec.Approval)
	}
	if rec.Phone != "not a number" {
		t.Fatalf("expected verbatim phone, got %q", rec.Phone)
	}
	if rec.LinkedIn != "" || rec.Answers != nil {
		t.Fatalf("expected minimal record, got %+v", rec)
	}
}

func TestRecordToleratesShortRows(t *testing.T) {
	n := newNormalizer(t)

	cols := n.Resolve([]string{"name", "email", "phone_number", "approval_status"})
	rec := n.Record(cols, []string{"Jane Doe"})

	if rec.Name != "Jane Doe" || rec.Email != "" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec.Approval != contact.ApprovalPending {
		t.Fatalf("expected missing status to read as pending, got %q", rec.Approval)
	}
}

func TestPhoneFallsBackVerbatim(t *testing.T) {
	n := newNormalizer(t)

	cases := []struct {
		raw  string
		want string
	}{
		{"(212) 555-0123", "+12125550123"},
		{"+44 20 7946 0958", "+442079460958"},
		{"ask Jane", "ask Jane"},
		{"12", "12"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := n.Phone(tc.raw); got != tc.want {
			t.Fatalf("Phone(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
