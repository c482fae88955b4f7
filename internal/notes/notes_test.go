package notes_test

import (
	"reflect"
	"strings"
	"testing"

	"rollcall/internal/event"
	"rollcall/internal/notes"
	"rollcall/internal/questions"
)

func wineYoga(t *testing.T) (event.Descriptor, *questions.Config) {
	t.Helper()
	mapping, _, err := questions.Load("")
	if err != nil {
		t.Fatalf("load default mapping: %v", err)
	}
	desc, err := event.Identify("Wine & Yoga Jan 19 2025.csv", mapping)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	return desc, mapping
}

func TestBuildCategorizesAnswers(t *testing.T) {
	desc, mapping := wineYoga(t)

	answers := map[string]string{
		"What describes you best?":   "Founder, early stage",
		"What are your interests?":   "Wine, Hiking",
		"How did you hear about us?": "A friend",
	}
	block := notes.Build(desc, answers, mapping)

	if block.Header != "WY-2025-01-19 (Wine & Yoga)" {
		t.Fatalf("unexpected header %q", block.Header)
	}
	want := []string{
		"ROLE: Founder, early stage",
		"INTEREST: Hiking",
		"INTEREST: Wine",
		"SOURCE: A friend",
	}
	if !reflect.DeepEqual(block.Lines, want) {
		t.Fatalf("got lines %v, want %v", block.Lines, want)
	}
}

func TestBuildRoleLinesRenderFirstInCategory(t *testing.T) {
	desc, mapping := wineYoga(t)

	answers := map[string]string{
		"What describes you best?":   "Investor",
		"What company are you with?": "Acme",
	}
	block := notes.Build(desc, answers, mapping)

	// COMPANY sorts before ROLE alphabetically, so this only passes
	// when role lines are pulled to the front.
	want := []string{"ROLE: Investor", "COMPANY: Acme"}
	if !reflect.DeepEqual(block.Lines, want) {
		t.Fatalf("got lines %v, want %v", block.Lines, want)
	}
}

func TestBuildDeduplicatesWithinCategory(t *testing.T) {
	desc, mapping := wineYoga(t)
	mapping.Questions["hobbies"] = questions.Rule{
		Patterns: []string{"hobbies"},
		Category: "INTERESTS",
		Prefix:   "INTEREST",
	}
	desc.Questions = append(desc.Questions, "hobbies")

	answers := map[string]string{
		"What are your interests?": "Wine",
		"What are your hobbies?":   "Wine",
	}
	block := notes.Build(desc, answers, mapping)

	want := []string{"INTEREST: Wine"}
	if !reflect.DeepEqual(block.Lines, want) {
		t.Fatalf("got lines %v, want %v", block.Lines, want)
	}
}

func TestBuildQuestionClaimsOneColumn(t *testing.T) {
	desc, mapping := wineYoga(t)

	// Both headers match the interests rule; only the first sorted
	// column may contribute.
	answers := map[string]string{
		"Main interests": "Wine",
		"Side interests": "Chess",
	}
	block := notes.Build(desc, answers, mapping)

	want := []string{"INTEREST: Wine"}
	if !reflect.DeepEqual(block.Lines, want) {
		t.Fatalf("got lines %v, want %v", block.Lines, want)
	}
}

func TestBuildWithoutAnswersKeepsHeader(t *testing.T) {
	desc, mapping := wineYoga(t)

	block := notes.Build(desc, nil, mapping)
	if block.Header == "" || len(block.Lines) != 0 {
		t.Fatalf("unexpected block %+v", block)
	}
}

func TestBuildCollapsesInnerSpaceRuns(t *testing.T) {
	desc, mapping := wineYoga(t)

	answers := map[string]string{
		"What describes you best?": "Founder,  early   stage",
	}
	block := notes.Build(desc, answers, mapping)

	want := []string{"ROLE: Founder, early stage"}
	if !reflect.DeepEqual(block.Lines, want) {
		t.Fatalf("got lines %v, want %v", block.Lines, want)
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	blocks := []notes.Block{
		{
			Header: "WY-2025-01-19 (Wine & Yoga)",
			Lines:  []string{"ROLE: Founder", "INTEREST: Wine"},
		},
		{
			Header: "YS-2025-03-02 (Yoga Social)",
		},
	}

	text := notes.Render(blocks)
	want := "EVENT: WY-2025-01-19 (Wine & Yoga)  ROLE: Founder  INTEREST: Wine-----EVENT: YS-2025-03-02 (Yoga Social)"
	if text != want {
		t.Fatalf("got %q, want %q", text, want)
	}
	if strings.Contains(text, "\n") {
		t.Fatal("rendered notes must stay on one physical line")
	}

	parsed := notes.Parse(text)
	if !reflect.DeepEqual(parsed, blocks) {
		t.Fatalf("got %+v, want %+v", parsed, blocks)
	}
	if again := notes.Render(parsed); again != text {
		t.Fatalf("round trip changed text: %q", again)
	}
}

func TestParseLegacySpaceSeparatedHistory(t *testing.T) {
	// Older histories joined blocks with ten spaces instead of dashes.
	text := "EVENT: WY-2025-01-19 (Wine & Yoga)  ROLE: Founder          EVENT: YS-2025-03-02 (Yoga Social)  GOAL: Relax"

	parsed := notes.Parse(text)
	if len(parsed) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(parsed))
	}
	if parsed[0].Code() != "WY-2025-01-19" || parsed[1].Code() != "YS-2025-03-02" {
		t.Fatalf("unexpected codes %q %q", parsed[0].Code(), parsed[1].Code())
	}
	if len(parsed[1].Lines) != 1 || parsed[1].Lines[0] != "GOAL: Relax" {
		t.Fatalf("unexpected lines %v", parsed[1].Lines)
	}
}

func TestParseDropsTextBeforeFirstHeader(t *testing.T) {
	parsed := notes.Parse("handwritten remark  EVENT: WY-2025-01-19 (Wine & Yoga)  ROLE: Founder")
	if len(parsed) != 1 {
		t.Fatalf("expected 1 block, got %d", len(parsed))
	}
	if len(parsed[0].Lines) != 1 || parsed[0].Lines[0] != "ROLE: Founder" {
		t.Fatalf("unexpected lines %v", parsed[0].Lines)
	}
}

func TestBlockCode(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"WY-2025-01-19 (Wine & Yoga)", "WY-2025-01-19"},
		{"WY-2025-01-19", "WY-2025-01-19"},
		{"", ""},
	}
	for _, tc := range cases {
		block := notes.Block{Header: tc.header}
		if got := block.Code(); got != tc.want {
			t.Fatalf("Code(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
