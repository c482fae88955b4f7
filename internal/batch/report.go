package batch

import "time"

// FileStatus classifies how a run handled one export.
type FileStatus string

const (
	FileProcessed FileStatus = "processed"
	FileSkipped   FileStatus = "skipped"
	FileFailed    FileStatus = "failed"
)

// FileResult is one export's outcome.
type FileResult struct {
	File        string
	Event       string
	Status      FileStatus
	Reason      string
	Rows        int
	SkippedRows int
	NewContacts int
	Merged      int
	Sidelined   int
}

// Report summarizes one run.
type Report struct {
	RunID    string
	Started  time.Time
	Finished time.Time
	Results  []FileResult
	Contacts int
}

// Processed counts exports that merged into the directory.
func (r *Report) Processed() int {
	return r.countStatus(FileProcessed)
}

// Skipped counts exports left untouched.
func (r *Report) Skipped() int {
	return r.countStatus(FileSkipped)
}

// NewContacts totals first-time identities across the run.
func (r *Report) NewContacts() int {
	total := 0
	for _, result := range r.Results {
		total += result.NewContacts
	}
	return total
}

// Merged totals records folded into already-known identities.
func (r *Report) Merged() int {
	total := 0
	for _, result := range r.Results {
		total += result.Merged
	}
	return total
}

// Sidelined totals declined and pending rows sent to the archive.
func (r *Report) Sidelined() int {
	total := 0
	for _, result := range r.Results {
		total += result.Sidelined
	}
	return total
}

func (r *Report) countStatus(status FileStatus) int {
	count := 0
	for _, result := range r.Results {
		if result.Status == status {
			count++
		}
	}
	return count
}
