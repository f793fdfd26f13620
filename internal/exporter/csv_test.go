package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_CreatesExchangeDir(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	records := [][]string{
		{"NASDAQ-3", "01-02-2023", "55.10"},
		{"NASDAQ-3", "02-02-2023", "56.00"},
	}
	require.NoError(t, w.Write("NASDAQ", "stock_3.csv", records))

	data, err := os.ReadFile(filepath.Join(root, "NASDAQ", "stock_3.csv"))
	require.NoError(t, err)
	assert.Equal(t, "NASDAQ-3,01-02-2023,55.10\nNASDAQ-3,02-02-2023,56.00\n", string(data))
}

func TestWriter_OverwritesExisting(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)

	require.NoError(t, w.Write("LSE", "s.csv", [][]string{{"a", "b", "c"}}))
	require.NoError(t, w.Write("LSE", "s.csv", [][]string{{"x", "y", "z"}}))

	data, err := os.ReadFile(filepath.Join(root, "LSE", "s.csv"))
	require.NoError(t, err)
	assert.Equal(t, "x,y,z\n", string(data))
}

func TestWriter_UnwritableRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	// The output root is a regular file, so MkdirAll must fail.
	w := NewWriter(path)
	assert.Error(t, w.Write("NYSE", "s.csv", [][]string{{"a", "b", "c"}}))
}
