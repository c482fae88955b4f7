// Package normalize turns raw CSV headers and rows into contact
// records: headers are resolved onto logical columns once per file,
// then each row is cleaned, classified by approval, and its phone
// number brought into E.164 form where possible.
package normalize

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"rollcall/internal/contact"
	"rollcall/internal/logging"
	"rollcall/internal/questions"
)

// Normalizer cleans rows from one export according to the mapping.
type Normalizer struct {
	mapping   *questions.Config
	region    string
	logger    *slog.Logger
	aliasKeys []string
}

// New returns a Normalizer. Region is the default phone region for
// numbers written without a country code.
func New(mapping *questions.Config, region string, logger *slog.Logger) *Normalizer {
	if region == "" {
		region = "US"
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	keys := make([]string, 0, len(mapping.Columns.Aliases))
	for key := range mapping.Columns.Aliases {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return &Normalizer{
		mapping:   mapping,
		region:    strings.ToUpper(region),
		logger:    logger.With(logging.String(logging.FieldComponent, "normalize")),
		aliasKeys: keys,
	}
}

// Columns is the resolved layout of one export's header row. Indexes
// are -1 when the column is absent; Answers maps the remaining column
// indexes onto their canonical headers.
type Columns struct {
	Name     int
	Email    int
	Phone    int
	Status   int
	LinkedIn int
	Answers  map[int]string
}

// Resolve maps a header row onto logical columns. The first header
// matching a candidate list claims the column; later duplicates are
// dropped rather than treated as answers.
func (n *Normalizer) Resolve(headers []string) Columns {
	cols := Columns{
		Name:     -1,
		Email:    -1,
		Phone:    -1,
		Status:   -1,
		LinkedIn: -1,
		Answers:  make(map[int]string),
	}
	for i, raw := range headers {
		header := n.canonicalHeader(raw)
		if header == "" || containsString(n.mapping.Columns.Ignore, header) {
			continue
		}
		switch {
		case cols.Name < 0 && containsString(n.mapping.Columns.Name, header):
			cols.Name = i
		case cols.Email < 0 && containsString(n.mapping.Columns.Email, header):
			cols.Email = i
		case cols.Phone < 0 && containsString(n.mapping.Columns.Phone, header):
			cols.Phone = i
		case cols.Status < 0 && containsString(n.mapping.Columns.Status, header):
			cols.Status = i
		case cols.LinkedIn < 0 && containsString(n.mapping.Columns.LinkedIn, header):
			cols.LinkedIn = i
		case n.isCoreHeader(header):
		default:
			cols.Answers[i] = header
		}
	}
	return cols
}

// Record assembles one row into a contact record. Rows that are not
// approved keep only the fields the declined archive needs.
func (n *Normalizer) Record(cols Columns, row []string) contact.Record {
	rec := contact.Record{
		Name:     cell(row, cols.Name),
		Email:    strings.ToLower(cell(row, cols.Email)),
		Approval: contact.ParseApproval(cell(row, cols.Status)),
	}
	if !rec.Approval.Approved() {
		rec.Phone = cell(row, cols.Phone)
		return rec
	}

	rec.Phone = n.Phone(cell(row, cols.Phone))
	rec.LinkedIn = cell(row, cols.LinkedIn)

	answers := make(map[string]string, len(cols.Answers))
	for i, header := range cols.Answers {
		if value := cell(row, i); value != "" {
			answers[header] = value
		}
	}
	if len(answers) > 0 {
		rec.Answers = answers
	}
	return rec
}

// Phone normalizes a number to E.164. Numbers that do not parse, or
// parse to something invalid, are kept verbatim so no data is lost.
func (n *Normalizer) Phone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := phonenumbers.Parse(raw, n.region)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		n.logger.Debug("keeping phone verbatim", logging.String("phone", raw))
		return raw
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}

// canonicalHeader lowers a header, applies the alias rewrites, and
// collapses leftover whitespace.
func (n *Normalizer) canonicalHeader(raw string) string {
	header := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(raw, "\uFEFF")))
	for _, key := range n.aliasKeys {
		if strings.Contains(header, key) {
			header = strings.ReplaceAll(header, key, n.mapping.Columns.Aliases[key])
		}
	}
	return strings.Join(strings.Fields(header), " ")
}

func (n *Normalizer) isCoreHeader(header string) bool {
	return containsString(n.mapping.Columns.Name, header) ||
		containsString(n.mapping.Columns.Email, header) ||
		containsString(n.mapping.Columns.Phone, header) ||
		containsString(n.mapping.Columns.Status, header) ||
		containsString(n.mapping.Columns.LinkedIn, header)
}

func containsString(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
