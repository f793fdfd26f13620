package recorder

import "time"

// RunEvent summarizes one completed batch run.
type RunEvent struct {
	RunID          string
	StartedAt      time.Time
	FinishedAt     time.Time
	Exchanges      int
	FilesProcessed int
	FilesSkipped   int
	RowsWritten    int
}

// FileStatus is the per-file processing outcome.
type FileStatus string

const (
	StatusOK      FileStatus = "OK"
	StatusSkipped FileStatus = "SKIPPED"
)

// FileEvent records the outcome of processing a single input file.
type FileEvent struct {
	RunID       string
	Exchange    string
	File        string
	StartRow    int
	TotalRows   int
	RowsWritten int
	Status      FileStatus
	Error       string
}

// Recorder persists batch run history for later inspection.
type Recorder interface {
	RecordRun(evt *RunEvent) error
	RecordFile(evt *FileEvent) error
	Close() error
}
