package merge_test

import (
	"reflect"
	"testing"
	"time"

	"rollcall/internal/contact"
	"rollcall/internal/event"
	"rollcall/internal/merge"
	"rollcall/internal/questions"
)

func wineEvent() event.Descriptor {
	return event.Descriptor{
		Code:      "WY-2025-01-19",
		Type:      "WY",
		Name:      "Wine & Yoga",
		Date:      time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC),
		Questions: []string{"rsvp_role", "interests"},
	}
}

func socialEvent() event.Descriptor {
	return event.Descriptor{
		Code:      "YS-2025-03-02",
		Type:      "YS",
		Name:      "Yoga Social",
		Date:      time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		Questions: []string{"rsvp_role"},
	}
}

func newMerger(t *testing.T) *merge.Merger {
	t.Helper()
	mapping, _, err := questions.Load("")
	if err != nil {
		t.Fatalf("load default mapping: %v", err)
	}
	return merge.New(mapping, []string{"linkedin.com", "linked.in"}, nil)
}

func TestApplyCreatesIdentity(t *testing.T) {
	m := newMerger(t)
	rec := contact.Record{
		Name:     "Jane Doe",
		Email:    "Jane@Example.com",
		Phone:    "+12125550123",
		LinkedIn: "https://linkedin.com/in/janedoe",
		Approval: contact.ApprovalApproved,
		Answers: map[string]string{
			"what best describes you?": "Founder, Angel",
			"what are your interests?": "Wine, Hiking",
		},
	}

	identity := m.Apply(nil, rec, wineEvent())
	if identity.Key != "jane@example.com" || identity.Email != "jane@example.com" {
		t.Fatalf("expected email key, got %q / %q", identity.Key, identity.Email)
	}
	if identity.LinkedIn != rec.LinkedIn {
		t.Fatalf("expected valid link kept, got %q", identity.LinkedIn)
	}
	if !identity.HasEvent("WY-2025-01-19") {
		t.Fatal("expected the event block recorded")
	}

	lines := identity.Notes[0].Lines
	if len(lines) != 3 {
		t.Fatalf("expected 3 note lines, got %v", lines)
	}
	// The role rule keeps its comma-joined value whole and leads the
	// professional category; interests split per value.
	if lines[0] != "ROLE: Founder, Angel" {
		t.Fatalf("expected role line first, got %v", lines)
	}
	if lines[1] != "INTEREST: Hiking" || lines[2] != "INTEREST: Wine" {
		t.Fatalf("expected sorted interest lines, got %v", lines)
	}
}

func TestApplyRejectsInvalidLink(t *testing.T) {
	m := newMerger(t)
	for _, url := range []string{"linkedin.com/in/janedoe", "https://example.com/jane", "ftp://linkedin.com/jane"} {
		identity := m.Apply(nil, contact.Record{Name: "Jane Doe", LinkedIn: url, Approval: contact.ApprovalApproved}, wineEvent())
		if identity.LinkedIn != "" {
			t.Fatalf("expected %q rejected, got %q", url, identity.LinkedIn)
		}
	}
}

func TestApplyFirstSeenWins(t *testing.T) {
	m := newMerger(t)
	identity := m.Apply(nil, contact.Record{Name: "Jane Doe", Email: "jane@example.com", Approval: contact.ApprovalApproved}, wineEvent())

	m.Apply(identity, contact.Record{
		Name:     "Janet Doe",
		Email:    "janet@example.com",
		Phone:    "+12125550123",
		LinkedIn: "https://linkedin.com/in/janedoe",
		Approval: contact.ApprovalApproved,
	}, socialEvent())

	if identity.Name != "Jane Doe" || identity.Email != "jane@example.com" {
		t.Fatalf("name/email must stay first-seen, got %q / %q", identity.Name, identity.Email)
	}
	if identity.Phone != "+12125550123" {
		t.Fatalf("expected empty phone filled, got %q", identity.Phone)
	}
	if identity.LinkedIn != "https://linkedin.com/in/janedoe" {
		t.Fatalf("expected empty link filled, got %q", identity.LinkedIn)
	}

	// A third observation must not displace the filled slots.
	m.Apply(identity, contact.Record{
		Name:     "Jane Doe",
		Phone:    "+15559999999",
		LinkedIn: "https://linkedin.com/in/other",
		Approval: contact.ApprovalApproved,
	}, event.Descriptor{Code: "WY-2025-04-06", Type: "WY", Name: "Wine & Yoga", Date: time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC)})

	if identity.Phone != "+12125550123" {
		t.Fatalf("expected first phone retained, got %q", identity.Phone)
	}
	if identity.LinkedIn != "https://linkedin.com/in/janedoe" {
		t.Fatalf("expected first link retained, got %q", identity.LinkedIn)
	}
}

func TestApplyIsIdempotentPerEvent(t *testing.T) {
	m := newMerger(t)
	rec := contact.Record{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+12125550123",
		Approval: contact.ApprovalApproved,
		Answers:  map[string]string{"what are your interests?": "Wine"},
	}

	once := m.Apply(nil, rec, wineEvent())
	twice := m.Apply(once, rec, wineEvent())
	if twice != once {
		t.Fatal("expected the same identity back")
	}
	if len(once.Notes) != 1 {
		t.Fatalf("expected one event block after replay, got %d", len(once.Notes))
	}

	fresh := m.Apply(nil, rec, wineEvent())
	if !reflect.DeepEqual(once, fresh) {
		t.Fatalf("replayed merge diverged from single merge:\n%+v\n%+v", once, fresh)
	}
}

func TestApplySyntheticKeyWithoutEmail(t *testing.T) {
	m := newMerger(t)
	identity := m.Apply(nil, contact.Record{Name: "María Löwe", Approval: contact.ApprovalApproved}, wineEvent())
	if identity.Key != "maria-lowe|WY-2025-01-19" {
		t.Fatalf("unexpected synthetic key %q", identity.Key)
	}
}
