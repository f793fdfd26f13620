package sampler

import (
	"bufio"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"PricePredictor/internal/model"
)

const (
	// windowSize is the number of contiguous rows sampled from each file.
	windowSize = 10

	// dateLayout is the DD-MM-YYYY format used by the input files.
	dateLayout = "02-01-2006"
)

// Seeder supplies the seed for one sampling call. The production seeder
// derives it from the wall clock, so repeated calls within one process
// produce independent draws; tests inject fixed seeds.
type Seeder func() int64

// ClockSeeder seeds from the current wall-clock time.
func ClockSeeder() int64 { return time.Now().UnixNano() }

// Sampler selects a random contiguous window of rows from input files.
type Sampler struct {
	seed Seeder
}

// New creates a Sampler using the given seeder, defaulting to ClockSeeder.
func New(seed Seeder) *Sampler {
	if seed == nil {
		seed = ClockSeeder
	}
	return &Sampler{seed: seed}
}

// SelectWindow reads the file and extracts a window of up to windowSize rows
// starting at a random offset. Files shorter than the window are returned
// whole, starting at row zero. Any I/O or parse failure abandons the file.
func (s *Sampler) SelectWindow(path string) (*model.Window, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	total := len(lines)
	start := s.startRow(total)

	end := start + windowSize
	if end > total {
		end = total
	}
	rows := make([]model.StockRow, 0, end-start)
	for i := start; i < end; i++ {
		row, err := parseRow(lines[i])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		rows = append(rows, row)
	}

	return &model.Window{Rows: rows, StartRow: start, TotalRows: total}, nil
}

// startRow draws a start offset uniformly from [0, total-windowSize],
// reseeding on every call. Short files always start at zero.
func (s *Sampler) startRow(total int) int {
	if total < windowSize {
		return 0
	}
	rng := rand.New(rand.NewSource(s.seed()))
	return rng.Intn(total - windowSize + 1)
}

// parseRow splits a raw line into a typed row. Lines must carry exactly
// three comma-separated fields: stock id, DD-MM-YYYY date, price.
func parseRow(line string) (model.StockRow, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 3 {
		return model.StockRow{}, fmt.Errorf("malformed row %q: want 3 fields, got %d", line, len(fields))
	}
	ts, err := time.Parse(dateLayout, fields[1])
	if err != nil {
		return model.StockRow{}, fmt.Errorf("parse timestamp %q: %w", fields[1], err)
	}
	price, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return model.StockRow{}, fmt.Errorf("parse price %q: %w", fields[2], err)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return model.StockRow{}, fmt.Errorf("price %q is not finite", fields[2])
	}
	return model.StockRow{StockID: fields[0], Timestamp: ts, Price: price}, nil
}
