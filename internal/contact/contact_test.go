package contact_test

import (
	"testing"

	"rollcall/internal/contact"
	"rollcall/internal/notes"
)

func TestParseApproval(t *testing.T) {
	cases := []struct {
		raw  string
		want contact.Approval
	}{
		{"approved", contact.ApprovalApproved},
		{" Approved ", contact.ApprovalApproved},
		{"DECLINED", contact.ApprovalDeclined},
		{"pending", contact.ApprovalPending},
		{"waitlisted", contact.ApprovalPending},
		{"", contact.ApprovalPending},
	}
	for _, tc := range cases {
		if got := contact.ParseApproval(tc.raw); got != tc.want {
			t.Fatalf("ParseApproval(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
	if contact.ApprovalDeclined.Approved() || !contact.ApprovalApproved.Approved() {
		t.Fatal("Approved() disagrees with the approval values")
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		full  string
		first string
		last  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Mary Jane Watson", "Mary", "Jane Watson"},
		{"  Cher  ", "Cher", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := contact.SplitName(tc.full)
		if first != tc.first || last != tc.last {
			t.Fatalf("SplitName(%q) = %q, %q; want %q, %q", tc.full, first, last, tc.first, tc.last)
		}
	}
}

func TestStableKeyPrefersEmail(t *testing.T) {
	if got := contact.StableKey(" Jane@Example.COM ", "Jane Doe", "WY-2025-01-19"); got != "jane@example.com" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestSyntheticKeySurvivesAccents(t *testing.T) {
	key := contact.StableKey("", "María Löwe", "WY-2025-01-19")
	if key != "maria-lowe|WY-2025-01-19" {
		t.Fatalf("unexpected key %q", key)
	}
	// Reloading from a card yields the same inputs, so the key must be
	// reproducible.
	if again := contact.SyntheticKey("María Löwe", "WY-2025-01-19"); again != key {
		t.Fatalf("key not reproducible: %q vs %q", again, key)
	}
}

func TestIdentityEventTracking(t *testing.T) {
	id := &contact.Identity{
		Name: "Jane Doe",
		Notes: []notes.Block{
			{Header: "WY-2025-01-19 (Wine & Yoga)", Lines: []string{"ROLE: Founder"}},
			{Header: "YS-2025-03-02 (Yoga Social)"},
		},
	}

	events := id.Events()
	if len(events) != 2 || events[0] != "WY-2025-01-19" || events[1] != "YS-2025-03-02" {
		t.Fatalf("unexpected events %v", events)
	}
	if !id.HasEvent("WY-2025-01-19") {
		t.Fatal("expected HasEvent to find merged event")
	}
	if id.HasEvent("WY-2026-01-19") {
		t.Fatal("unexpected event match")
	}

	want := "EVENT: WY-2025-01-19 (Wine & Yoga)  ROLE: Founder-----EVENT: YS-2025-03-02 (Yoga Social)"
	if got := id.NoteText(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
