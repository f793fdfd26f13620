package model

import "time"

// RunSummary aggregates the outcome of one batch run over all exchanges.
type RunSummary struct {
	Exchanges      int
	FilesProcessed int
	FilesSkipped   int
	RowsWritten    int
	StartedAt      time.Time
	FinishedAt     time.Time
}
