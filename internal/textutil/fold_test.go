package textutil_test

import (
	"testing"

	"rollcall/internal/textutil"
)

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"María Löwe", "maria lowe"},
		{"  JOSÉ  ", "jose"},
		{"plain", "plain"},
		{"Ångström", "angstrom"},
	}
	for _, tc := range tests {
		if got := textutil.Fold(tc.input); got != tc.want {
			t.Errorf("Fold(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFoldFeedsSlug(t *testing.T) {
	if got := textutil.Slug(textutil.Fold("María Löwe")); got != "maria-lowe" {
		t.Fatalf("folded slug = %q, want %q", got, "maria-lowe")
	}
}
