package event_test

import (
	"errors"
	"testing"
	"time"

	"rollcall/internal/event"
	"rollcall/internal/questions"
)

func defaultMapping(t *testing.T) *questions.Config {
	t.Helper()
	cfg, _, err := questions.Load("")
	if err != nil {
		t.Fatalf("load default mapping: %v", err)
	}
	return cfg
}

func TestIdentifyMonthNameDate(t *testing.T) {
	mapping := defaultMapping(t)

	desc, err := event.Identify("Wine & Yoga Jan 19 2025.csv", mapping)
	if err != nil {
		t.Fatalf("Identify returned error: %v", err)
	}
	if desc.Code != "WY-2025-01-19" {
		t.Fatalf("unexpected code %q", desc.Code)
	}
	if desc.Type != "WY" || desc.Name != "Wine & Yoga" {
		t.Fatalf("unexpected type %q name %q", desc.Type, desc.Name)
	}
	want := time.Date(2025, time.January, 19, 0, 0, 0, 0, time.UTC)
	if !desc.Date.Equal(want) {
		t.Fatalf("unexpected date %v", desc.Date)
	}
	if len(desc.Questions) == 0 || desc.Questions[0] != "rsvp_role" {
		t.Fatalf("unexpected questions %v", desc.Questions)
	}
}

func TestIdentifyNumericDate(t *testing.T) {
	mapping := defaultMapping(t)

	desc, err := event.Identify("/incoming/01-31-2025 Yoga Social.csv", mapping)
	if err != nil {
		t.Fatalf("Identify returned error: %v", err)
	}
	if desc.Code != "YS-2025-01-31" {
		t.Fatalf("unexpected code %q", desc.Code)
	}
}

func TestIdentifyPrefersFirstConfiguredEvent(t *testing.T) {
	mapping := defaultMapping(t)

	// "wine" and "yoga" both appear; WY is listed first.
	desc, err := event.Identify("wine yoga Jan 19 2025.csv", mapping)
	if err != nil {
		t.Fatalf("Identify returned error: %v", err)
	}
	if desc.Type != "WY" {
		t.Fatalf("expected WY, got %q", desc.Type)
	}
}

func TestIdentifyStripsIgnoreWords(t *testing.T) {
	mapping := defaultMapping(t)
	decoy := questions.EventType{Tag: "CP", Name: "Copy Club", Identifiers: []string{"copy"}}
	mapping.Events = append([]questions.EventType{decoy}, mapping.Events...)

	// "copy" is an ignore word, so the decoy must not win even though
	// it is listed first.
	desc, err := event.Identify("yoga copy 02-14-2025.csv", mapping)
	if err != nil {
		t.Fatalf("Identify returned error: %v", err)
	}
	if desc.Type != "YS" {
		t.Fatalf("expected YS, got %q", desc.Type)
	}
}

func TestIdentifyUnknownEvent(t *testing.T) {
	mapping := defaultMapping(t)

	_, err := event.Identify("book club Jan 19 2025.csv", mapping)
	if !errors.Is(err, event.ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
}

func TestIdentifyNoDate(t *testing.T) {
	mapping := defaultMapping(t)

	_, err := event.Identify("wine yoga.csv", mapping)
	if !errors.Is(err, event.ErrNoDate) {
		t.Fatalf("expected ErrNoDate, got %v", err)
	}
}

func TestDerivedFileNames(t *testing.T) {
	desc := event.Descriptor{
		Type: "WY",
		Date: time.Date(2025, time.January, 19, 0, 0, 0, 0, time.UTC),
	}
	if got := desc.SnapshotName(); got != "2025-01-19_WY_snapshot.vcf" {
		t.Fatalf("unexpected snapshot name %q", got)
	}
	if got := desc.DeclinedName(); got != "01-19-2025WY_declined.txt" {
		t.Fatalf("unexpected declined name %q", got)
	}
}
