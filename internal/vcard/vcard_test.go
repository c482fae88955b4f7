package vcard_test

import (
	"bytes"
	"testing"

	"rollcall/internal/vcard"
)

func TestEncodeDialect(t *testing.T) {
	cards := []vcard.Card{
		{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+12125550123",
			LinkedIn: "https://linkedin.com/in/janedoe",
			Note:     "EVENT: WY-2025-01-19 (Wine & Yoga)  ROLE: Founder",
		},
		{
			Name: "Mary Jane Watson",
		},
	}

	want := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"N:Doe;Jane;;;\n" +
		"FN:Jane Doe\n" +
		"EMAIL:jane@example.com\n" +
		"TEL:+12125550123\n" +
		"URL;TYPE=WORK:https://linkedin.com/in/janedoe\n" +
		"NOTE:EVENT: WY-2025-01-19 (Wine & Yoga)  ROLE: Founder\n" +
		"END:VCARD\n" +
		"\n" +
		"BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"N:Jane Watson;Mary;;;\n" +
		"FN:Mary Jane Watson\n" +
		"EMAIL:\n" +
		"END:VCARD\n" +
		"\n"

	if got := string(vcard.Encode(cards)); got != want {
		t.Fatalf("unexpected encoding:\n%s\nwant:\n%s", got, want)
	}
}

func TestDecodeTolerantInput(t *testing.T) {
	data := "address book export\r\n" +
		"BEGIN:VCARD\r\n" +
		"VERSION:3.0\r\n" +
		"Email;TYPE=INTERNET:Jane@Example.com\r\n" +
		"TEL;TYPE=CELL:+12125550123\r\n" +
		"X-UNKNOWN:whatever\r\n" +
		"N:Doe;Jane;;;\r\n" +
		"END:VCARD\r\n" +
		"stray line between cards\r\n" +
		"BEGIN:VCARD\r\n" +
		"FN:Mary Jane Watson\r\n" +
		"URL;TYPE=WORK:https://linkedin.com/in/mj\r\n" +
		"NOTE:EVENT: YS-2025-03-02 (Yoga Social)\r\n" +
		"END:VCARD\r\n"

	cards := vcard.Decode([]byte(data))
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}

	if cards[0].Name != "Jane Doe" {
		t.Fatalf("expected name from N fallback, got %q", cards[0].Name)
	}
	if cards[0].Email != "jane@example.com" {
		t.Fatalf("expected lower-cased email, got %q", cards[0].Email)
	}
	if cards[0].Phone != "+12125550123" {
		t.Fatalf("unexpected phone %q", cards[0].Phone)
	}

	if cards[1].Name != "Mary Jane Watson" || cards[1].LinkedIn != "https://linkedin.com/in/mj" {
		t.Fatalf("unexpected card %+v", cards[1])
	}
	if cards[1].Note != "EVENT: YS-2025-03-02 (Yoga Social)" {
		t.Fatalf("unexpected note %q", cards[1].Note)
	}
}

func TestDecodeSkipsUnframedContent(t *testing.T) {
	cards := vcard.Decode([]byte("FN:Not In A Card\nTEL:+15551234567\n"))
	if len(cards) != 0 {
		t.Fatalf("expected no cards, got %d", len(cards))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cards := []vcard.Card{
		{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "+12125550123",
			Note:  "EVENT: WY-2025-01-19 (Wine & Yoga)  ROLE: Founder-----EVENT: YS-2025-03-02 (Yoga Social)",
		},
		{
			Name: "María Löwe",
			Note: "EVENT: WY-2025-01-19 (Wine & Yoga)",
		},
	}

	encoded := vcard.Encode(cards)
	decoded := vcard.Decode(encoded)
	if len(decoded) != len(cards) {
		t.Fatalf("expected %d cards, got %d", len(cards), len(decoded))
	}
	for i := range cards {
		if decoded[i] != cards[i] {
			t.Fatalf("card %d changed: %+v vs %+v", i, decoded[i], cards[i])
		}
	}
	if again := vcard.Encode(decoded); !bytes.Equal(again, encoded) {
		t.Fatalf("re-encoding changed bytes:\n%s\nvs:\n%s", again, encoded)
	}
}
