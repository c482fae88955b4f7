// Package directory holds the resolved identities in insertion order
// and moves them between memory and the master VCF snapshot.
package directory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"log/slog"

	"rollcall/internal/contact"
	"rollcall/internal/logging"
	"rollcall/internal/notes"
	"rollcall/internal/vcard"
)

// Directory is the in-memory contact directory. Insertion order is
// preserved because the resolver breaks scoring ties by it.
type Directory struct {
	logger     *slog.Logger
	identities []*contact.Identity
	byKey      map[string]*contact.Identity
}

// New returns an empty directory.
func New(logger *slog.Logger) *Directory {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Directory{
		logger: logging.NewComponentLogger(logger, "directory"),
		byKey:  make(map[string]*contact.Identity),
	}
}

// Load reads the master snapshot at path. A missing file yields an
// empty directory. A file that parses to no cards yields an empty
// directory with a warning; everything already saved came from us, so
// that points at outside editing, and starting empty is safer than
// failing the whole run. Read errors are returned because saving over
// an unreadable master could destroy it.
func Load(path string, logger *slog.Logger) (*Directory, error) {
	d := New(logger)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return d, nil
		}
		return nil, fmt.Errorf("read directory snapshot: %w", err)
	}

	cards := vcard.Decode(data)
	if len(data) > 0 && len(cards) == 0 {
		d.logger.Warn("directory snapshot has no readable cards, starting empty",
			logging.String("path", path),
			logging.String(logging.FieldErrorHint, "previous contacts will be re-created on their next event"))
		return d, nil
	}

	for _, card := range cards {
		identity := identityFromCard(card)
		if identity == nil {
			continue
		}
		d.Add(identity)
	}

	d.logger.Debug("loaded directory snapshot",
		logging.Int("contacts", len(d.identities)),
		logging.String("path", path))
	return d, nil
}

// Add appends a new identity. A key collision keeps the identity
// already present.
func (d *Directory) Add(identity *contact.Identity) {
	if identity == nil || identity.Key == "" {
		return
	}
	if _, exists := d.byKey[identity.Key]; exists {
		d.logger.Warn("duplicate directory key, keeping first",
			logging.String(logging.FieldContact, identity.Key))
		return
	}
	d.byKey[identity.Key] = identity
	d.identities = append(d.identities, identity)
}

// Get returns the identity stored under key.
func (d *Directory) Get(key string) (*contact.Identity, bool) {
	identity, ok := d.byKey[key]
	return identity, ok
}

// Identities returns the identities in insertion order.
func (d *Directory) Identities() []*contact.Identity {
	out := make([]*contact.Identity, len(d.identities))
	copy(out, d.identities)
	return out
}

// Len returns the number of identities held.
func (d *Directory) Len() int {
	return len(d.identities)
}

// Save writes every approved identity to path, sorted by key so
// consecutive snapshots diff cleanly. The write goes through a temp
// file and rename.
func (d *Directory) Save(path string) error {
	ordered := make([]*contact.Identity, len(d.identities))
	copy(ordered, d.identities)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Key < ordered[j].Key })

	cards := make([]vcard.Card, 0, len(ordered))
	for _, identity := range ordered {
		if !identity.Approval.Approved() {
			continue
		}
		cards = append(cards, vcard.Card{
			Name:     identity.Name,
			Email:    identity.Email,
			Phone:    identity.Phone,
			LinkedIn: identity.LinkedIn,
			Note:     identity.NoteText(),
		})
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, vcard.Encode(cards), 0o644); err != nil {
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp snapshot: %w", err)
	}

	d.logger.Debug("saved directory snapshot",
		logging.Int("contacts", len(cards)),
		logging.String("path", path))
	return nil
}

// identityFromCard rebuilds an identity from a stored card. The key is
// re-derived the same way it was first assigned: the email when
// present, otherwise the folded name joined with the first event code
// in the notes.
func identityFromCard(card vcard.Card) *contact.Identity {
	if card.Name == "" && card.Email == "" && card.Phone == "" {
		return nil
	}

	blocks := notes.Parse(card.Note)
	firstCode := ""
	if len(blocks) > 0 {
		firstCode = blocks[0].Code()
	}

	return &contact.Identity{
		Key:      contact.StableKey(card.Email, card.Name, firstCode),
		Name:     card.Name,
		Email:    card.Email,
		Phone:    card.Phone,
		LinkedIn: card.LinkedIn,
		Approval: contact.ApprovalApproved,
		Notes:    blocks,
	}
}
