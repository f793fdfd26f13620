package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists formatted rows into a mirrored output tree.
type Writer struct {
	OutputRoot string
}

// NewWriter creates a Writer rooted at outputRoot.
func NewWriter(outputRoot string) *Writer {
	return &Writer{OutputRoot: outputRoot}
}

// Write saves the records as {root}/{exchange}/{fileName}, creating the
// exchange directory if it does not exist yet.
func (w *Writer) Write(exchange, fileName string, records [][]string) error {
	dir := filepath.Join(w.OutputRoot, exchange)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	path := filepath.Join(dir, fileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
