package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"PricePredictor/internal/exporter"
	"PricePredictor/internal/forecast"
	"PricePredictor/internal/model"
	"PricePredictor/internal/recorder"
	"PricePredictor/internal/sampler"
)

// Runner walks the input tree and applies the sample/forecast/format/write
// pipeline to each qualifying file, one at a time.
//
// Error scope rules: a failing file is skipped and the exchange continues;
// a failing exchange listing aborts that exchange's remaining files only;
// a failing input root listing aborts the whole run.
type Runner struct {
	InputDir string
	MaxFiles int

	Sampler  *sampler.Sampler
	Writer   *exporter.Writer
	Recorder recorder.Recorder
}

// New creates a Runner.
func New(inputDir string, maxFiles int, s *sampler.Sampler, w *exporter.Writer, rec recorder.Recorder) *Runner {
	return &Runner{
		InputDir: inputDir,
		MaxFiles: maxFiles,
		Sampler:  s,
		Writer:   w,
		Recorder: rec,
	}
}

// Run processes every exchange directory under the input root.
func (r *Runner) Run() (*model.RunSummary, error) {
	sum := &model.RunSummary{StartedAt: time.Now()}
	runID := uuid.NewString()

	entries, err := os.ReadDir(r.InputDir)
	if err != nil {
		log.Printf("ERROR: %s", describe(r.InputDir, err))
		return nil, fmt.Errorf("list input root %s: %w", r.InputDir, err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sum.Exchanges++
		r.processExchange(runID, e.Name(), sum)
	}

	sum.FinishedAt = time.Now()
	if err := r.Recorder.RecordRun(&recorder.RunEvent{
		RunID:          runID,
		StartedAt:      sum.StartedAt,
		FinishedAt:     sum.FinishedAt,
		Exchanges:      sum.Exchanges,
		FilesProcessed: sum.FilesProcessed,
		FilesSkipped:   sum.FilesSkipped,
		RowsWritten:    sum.RowsWritten,
	}); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}
	return sum, nil
}

// processExchange handles up to MaxFiles CSV files in one exchange
// directory. Failed files count toward the cap, matching the per-exchange
// attempt semantics of the batch contract.
func (r *Runner) processExchange(runID, exchange string, sum *model.RunSummary) {
	exchangePath := filepath.Join(r.InputDir, exchange)
	entries, err := os.ReadDir(exchangePath)
	if err != nil {
		log.Printf("ERROR: %s", describe(exchangePath, err))
		return
	}

	attempts := 0
	for _, e := range entries {
		if attempts == r.MaxFiles {
			return
		}
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		attempts++

		evt := &recorder.FileEvent{RunID: runID, Exchange: exchange, File: e.Name()}
		if err := r.processFile(exchange, e.Name(), evt); err != nil {
			log.Printf("ERROR: %s", describe(filepath.Join(exchangePath, e.Name()), err))
			sum.FilesSkipped++
			evt.Status = recorder.StatusSkipped
			evt.Error = err.Error()
		} else {
			sum.FilesProcessed++
			sum.RowsWritten += evt.RowsWritten
			evt.Status = recorder.StatusOK
		}
		if err := r.Recorder.RecordFile(evt); err != nil {
			log.Printf("[WARN] record file %s/%s: %v", exchange, e.Name(), err)
		}
	}
}

// processFile runs the full pipeline for one file.
func (r *Runner) processFile(exchange, fileName string, evt *recorder.FileEvent) error {
	window, err := r.Sampler.SelectWindow(filepath.Join(r.InputDir, exchange, fileName))
	if err != nil {
		return err
	}
	evt.StartRow = window.StartRow
	evt.TotalRows = window.TotalRows

	rows, err := forecast.Extend(window.Rows)
	if err != nil {
		return fmt.Errorf("forecast: %w", err)
	}

	records := exporter.FormatRows(rows)
	if err := r.Writer.Write(exchange, fileName, records); err != nil {
		return err
	}
	evt.RowsWritten = len(records)
	return nil
}

// describe phrases an error for the console, distinguishing missing paths
// and permission problems from everything else.
func describe(path string, err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("%s does not exist", path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Sprintf("permission denied for accessing %s", path)
	default:
		return fmt.Sprintf("an unexpected error occurred: %v", err)
	}
}
