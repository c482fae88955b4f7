// Package match resolves incoming records onto the identities already
// in the directory.
package match

import (
	"strings"

	"log/slog"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"rollcall/internal/contact"
	"rollcall/internal/directory"
	"rollcall/internal/logging"
	"rollcall/internal/textutil"
)

// Scorer measures name similarity on a 0 to 100 scale. Implementations
// must be symmetric and case-insensitive.
type Scorer interface {
	Similarity(a, b string) int
}

// TokenSortScorer scores names with a token-sort ratio over folded
// text, so "Löwe María" and "Maria Lowe" land close together.
type TokenSortScorer struct{}

// Similarity implements Scorer. An empty name on either side scores
// zero; two blanks must never look like the same person.
func (TokenSortScorer) Similarity(a, b string) int {
	a = textutil.Fold(a)
	b = textutil.Fold(b)
	if a == "" || b == "" {
		return 0
	}
	return fuzzy.TokenSortRatio(a, b)
}

// Resolver finds the identity a record belongs to, trying the
// strongest signal first: exact email, then a shared phone number
// backed by name similarity, then name similarity alone against a
// relaxed threshold.
type Resolver struct {
	dir       *directory.Directory
	scorer    Scorer
	threshold int
	relaxed   int
	logger    *slog.Logger
}

// NewResolver builds a resolver over the directory. Threshold guards
// phone-backed matches; relaxed guards name-only matches and is capped
// at threshold.
func NewResolver(dir *directory.Directory, scorer Scorer, threshold, relaxed int, logger *slog.Logger) *Resolver {
	if scorer == nil {
		scorer = TokenSortScorer{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if threshold <= 0 {
		threshold = 85
	}
	if relaxed <= 0 || relaxed > threshold {
		relaxed = threshold
	}
	return &Resolver{
		dir:       dir,
		scorer:    scorer,
		threshold: threshold,
		relaxed:   relaxed,
		logger:    logging.NewComponentLogger(logger, "match"),
	}
}

// Resolve returns the matching identity, or false when the record
// looks like a new person.
func (r *Resolver) Resolve(rec contact.Record) (*contact.Identity, bool) {
	candidates := r.dir.Identities()

	if email := strings.TrimSpace(rec.Email); email != "" {
		for _, candidate := range candidates {
			if candidate.Email != "" && strings.EqualFold(candidate.Email, email) {
				r.logger.Debug("matched by email",
					logging.String(logging.FieldContact, candidate.Key))
				return candidate, true
			}
		}
	}

	if phone := strings.TrimSpace(rec.Phone); phone != "" {
		samePhone := func(candidate *contact.Identity) bool {
			return candidate.Phone != "" && candidate.Phone == phone
		}
		if best, score := r.bestByName(rec.Name, candidates, samePhone); best != nil && score >= r.threshold {
			r.logger.Debug("matched by phone and name",
				logging.String(logging.FieldContact, best.Key),
				logging.Int("score", score),
				logging.Int("threshold", r.threshold))
			return best, true
		}
	}

	if best, score := r.bestByName(rec.Name, candidates, nil); best != nil && score >= r.relaxed {
		r.logger.Debug("matched by name",
			logging.String(logging.FieldContact, best.Key),
			logging.Int("score", score),
			logging.Int("threshold", r.relaxed))
		return best, true
	}

	return nil, false
}

// bestByName scores the record name against every candidate keep
// admits. Strictly-greater comparison keeps the earliest candidate on
// ties.
func (r *Resolver) bestByName(name string, candidates []*contact.Identity, keep func(*contact.Identity) bool) (*contact.Identity, int) {
	var best *contact.Identity
	bestScore := -1
	for _, candidate := range candidates {
		if keep != nil && !keep(candidate) {
			continue
		}
		score := r.scorer.Similarity(name, candidate.Name)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best, bestScore
}
