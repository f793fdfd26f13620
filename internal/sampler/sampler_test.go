package sampler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture writes a CSV file with rows DATA-1,<date>,<i+100>.00.
func writeFixture(t *testing.T, rows int) string {
	t.Helper()
	var b strings.Builder
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "DATA-1,%s,%d.00\n", base.AddDate(0, 0, i).Format("02-01-2006"), 100+i)
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func fixedSeeder(seed int64) Seeder {
	return func() int64 { return seed }
}

func TestSelectWindow_FullFile(t *testing.T) {
	path := writeFixture(t, 30)
	s := New(fixedSeeder(42))

	w, err := s.SelectWindow(path)
	require.NoError(t, err)

	assert.Len(t, w.Rows, 10)
	assert.Equal(t, 30, w.TotalRows)
	assert.GreaterOrEqual(t, w.StartRow, 0)
	assert.LessOrEqual(t, w.StartRow, 20)

	// Rows must be the contiguous run starting at StartRow, in file order.
	for i, r := range w.Rows {
		assert.Equal(t, "DATA-1", r.StockID)
		assert.InDelta(t, float64(100+w.StartRow+i), r.Price, 1e-9)
	}
}

func TestSelectWindow_StartBounds(t *testing.T) {
	path := writeFixture(t, 14)

	for seed := int64(0); seed < 200; seed++ {
		w, err := New(fixedSeeder(seed)).SelectWindow(path)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, w.StartRow, 0)
		assert.LessOrEqual(t, w.StartRow, 4)
		assert.Len(t, w.Rows, 10)
	}
}

func TestSelectWindow_ShortFile(t *testing.T) {
	path := writeFixture(t, 4)
	w, err := New(fixedSeeder(1)).SelectWindow(path)
	require.NoError(t, err)

	assert.Equal(t, 0, w.StartRow)
	assert.Equal(t, 4, w.TotalRows)
	assert.Len(t, w.Rows, 4)
}

func TestSelectWindow_MissingFile(t *testing.T) {
	_, err := New(nil).SelectWindow(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestSelectWindow_MalformedRows(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"two fields", "DATA-1,01-01-2024"},
		{"four fields", "DATA-1,01-01-2024,10.0,extra"},
		{"bad date", "DATA-1,2024-01-01,10.0"},
		{"bad price", "DATA-1,01-01-2024,ten"},
		{"infinite price", "DATA-1,01-01-2024,inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.line+"\n"), 0o644))
			_, err := New(fixedSeeder(0)).SelectWindow(path)
			assert.Error(t, err)
		})
	}
}

func TestSelectWindow_ReseedsPerCall(t *testing.T) {
	path := writeFixture(t, 30)

	calls := 0
	s := New(func() int64 {
		calls++
		return int64(calls)
	})
	_, err := s.SelectWindow(path)
	require.NoError(t, err)
	_, err = s.SelectWindow(path)
	require.NoError(t, err)

	assert.Equal(t, 2, calls, "each sampling call must draw a fresh seed")
}

func TestParseRow(t *testing.T) {
	row, err := parseRow("NYSE-77,15-06-2023,42.5")
	require.NoError(t, err)
	assert.Equal(t, "NYSE-77", row.StockID)
	assert.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), row.Timestamp)
	assert.InDelta(t, 42.5, row.Price, 1e-9)
}

func TestStartRow_ShortFileAlwaysZero(t *testing.T) {
	s := New(fixedSeeder(99))
	for total := 0; total < 10; total++ {
		assert.Equal(t, 0, s.startRow(total))
	}
	// Exactly the window size still has one valid start.
	assert.Equal(t, 0, s.startRow(10))
}
