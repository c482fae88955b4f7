// Package batch drives one processing run: order the exports by event
// date, fold each one through resolve and merge, and leave the
// directory, archive, and history ledger durable after every event.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"rollcall/internal/config"
	"rollcall/internal/contact"
	"rollcall/internal/directory"
	"rollcall/internal/event"
	"rollcall/internal/ledger"
	"rollcall/internal/logging"
	"rollcall/internal/match"
	"rollcall/internal/merge"
	"rollcall/internal/normalize"
	"rollcall/internal/questions"
	"rollcall/internal/roster"
	"rollcall/internal/vcard"
)

// ErrNoInputs reports an input path with no CSV exports under it.
var ErrNoInputs = errors.New("no csv exports found")

// Runner executes batches against one shared directory.
type Runner struct {
	cfg        *config.Config
	mapping    *questions.Config
	dir        *directory.Directory
	ledger     *ledger.Ledger
	normalizer *normalize.Normalizer
	merger     *merge.Merger
	logger     *slog.Logger
}

// NewRunner wires a runner over the loaded directory and ledger.
func NewRunner(cfg *config.Config, mapping *questions.Config, dir *directory.Directory, led *ledger.Ledger, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:        cfg,
		mapping:    mapping,
		dir:        dir,
		ledger:     led,
		normalizer: normalize.New(mapping, cfg.Matching.PhoneRegion, logger),
		merger:     merge.New(mapping, cfg.Matching.LinkDomains, logger),
		logger:     logging.NewComponentLogger(logger, "batch"),
	}
}

// CollectInputs expands path into the exports a run should consider: a
// CSV file yields itself, a directory yields its CSV files.
func CollectInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read input path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			inputs = append(inputs, filepath.Join(path, entry.Name()))
		}
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInputs, path)
	}
	sort.Strings(inputs)
	return inputs, nil
}

type plannedFile struct {
	path string
	desc event.Descriptor
}

// Run processes the exports in ascending event-date order. Files that
// cannot be identified, were already processed, or fail to read are
// reported and skipped; only a failed directory save aborts the run.
func (r *Runner) Run(ctx context.Context, inputs []string) (*Report, error) {
	report := &Report{RunID: uuid.NewString(), Started: time.Now()}
	ctx = logging.WithRunID(ctx, report.RunID)
	logger := logging.WithContext(ctx, r.logger)

	var planned []plannedFile
	for _, input := range inputs {
		desc, err := event.Identify(input, r.mapping)
		if err != nil {
			logger.Warn("skipping unidentifiable export",
				logging.String(logging.FieldFile, filepath.Base(input)),
				logging.Error(err))
			report.Results = append(report.Results, FileResult{
				File:   filepath.Base(input),
				Status: FileSkipped,
				Reason: err.Error(),
			})
			continue
		}
		if r.ledger.HasFile(input) {
			logger.Info("export already processed",
				logging.String(logging.FieldFile, filepath.Base(input)),
				logging.String(logging.FieldEvent, desc.Code))
			report.Results = append(report.Results, FileResult{
				File:   filepath.Base(input),
				Event:  desc.Code,
				Status: FileSkipped,
				Reason: "already processed",
			})
			continue
		}
		planned = append(planned, plannedFile{path: input, desc: desc})
	}

	// Later merges read the state earlier events left behind, so date
	// order is a correctness requirement, not a nicety.
	sort.SliceStable(planned, func(i, j int) bool {
		if !planned[i].desc.Date.Equal(planned[j].desc.Date) {
			return planned[i].desc.Date.Before(planned[j].desc.Date)
		}
		return planned[i].path < planned[j].path
	})

	for _, plan := range planned {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		result, err := r.processFile(logging.WithEvent(ctx, plan.desc.Code), plan)
		report.Results = append(report.Results, result)
		if err != nil {
			return report, err
		}
	}

	report.Finished = time.Now()
	report.Contacts = r.dir.Len()
	return report, nil
}

// processFile folds one export into the directory. The returned error
// is only non-nil for failures that must abort the whole run.
func (r *Runner) processFile(ctx context.Context, plan plannedFile) (FileResult, error) {
	logger := logging.WithContext(ctx, r.logger)
	result := FileResult{File: filepath.Base(plan.path), Event: plan.desc.Code, Status: FileProcessed}

	rows, err := roster.Read(plan.path)
	if err != nil {
		logger.Warn("skipping unreadable export", logging.Error(err))
		result.Status = FileSkipped
		result.Reason = err.Error()
		return result, nil
	}
	cols := r.normalizer.Resolve(rows.Headers)

	resolver := match.NewResolver(r.dir, nil, r.cfg.Matching.NameThreshold, r.cfg.RelaxedNameThreshold(), r.logger)

	var sidelined []contact.Record
	var touched []*contact.Identity
	for i, row := range rows.Rows {
		rec := r.normalizer.Record(cols, row)
		result.Rows++

		if rec.Name == "" && rec.Email == "" {
			logger.Warn("skipping row with no name or email", logging.Int(logging.FieldRow, i+2))
			result.SkippedRows++
			continue
		}
		if !rec.Approval.Approved() {
			sidelined = append(sidelined, rec)
			result.Sidelined++
			continue
		}

		existing, found := resolver.Resolve(rec)
		identity := r.merger.Apply(existing, rec, plan.desc)
		if !found {
			r.dir.Add(identity)
			result.NewContacts++
		} else {
			result.Merged++
		}
		touched = append(touched, identity)
	}

	if len(sidelined) > 0 {
		archivePath := filepath.Join(r.cfg.Paths.ArchiveDir, plan.desc.DeclinedName())
		if err := writeDeclined(archivePath, sidelined); err != nil {
			logger.Warn("could not write declined archive",
				logging.Error(err),
				logging.String("path", archivePath))
		}
	}

	snapshotPath := filepath.Join(r.cfg.Paths.SnapshotDir, plan.desc.SnapshotName())
	if err := writeEventSnapshot(snapshotPath, touched); err != nil {
		logger.Warn("could not write event snapshot",
			logging.Error(err),
			logging.String("path", snapshotPath))
		snapshotPath = ""
	}

	// Durability order: the directory must hold this event's merges
	// before the ledger calls the file done, so a crash in between
	// replays the file instead of losing it.
	if err := r.dir.Save(r.cfg.Paths.DirectoryFile); err != nil {
		result.Status = FileFailed
		result.Reason = err.Error()
		return result, fmt.Errorf("save directory after %s: %w", result.File, err)
	}
	if err := r.ledger.RecordFile(plan.path); err != nil {
		logger.Warn("could not record processed file", logging.Error(err))
	} else if snapshotPath != "" {
		if err := r.ledger.RecordSnapshot(snapshotPath); err != nil {
			logger.Warn("could not record event snapshot", logging.Error(err))
		}
	}

	logger.Info("processed export",
		logging.String(logging.FieldFile, result.File),
		logging.Int("rows", result.Rows),
		logging.Int("new", result.NewContacts),
		logging.Int("merged", result.Merged),
		logging.Int("sidelined", result.Sidelined))
	return result, nil
}

// writeEventSnapshot stores just this event's approved contacts.
func writeEventSnapshot(path string, identities []*contact.Identity) error {
	cards := make([]vcard.Card, 0, len(identities))
	seen := make(map[string]struct{}, len(identities))
	for _, identity := range identities {
		if !identity.Approval.Approved() {
			continue
		}
		if _, dup := seen[identity.Key]; dup {
			continue
		}
		seen[identity.Key] = struct{}{}
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
	if err := os.WriteFile(path, vcard.Encode(cards), 0o644); err != nil {
		return fmt.Errorf("write event snapshot: %w", err)
	}
	return nil
}
