package model

import "time"

// StockRow is a single price observation, either read from an input
// file or produced by the forecast heuristic.
type StockRow struct {
	StockID   string
	Timestamp time.Time // calendar date, no time-of-day component
	Price     float64
}

// Window holds the contiguous run of rows sampled from one input file.
type Window struct {
	Rows      []StockRow
	StartRow  int
	TotalRows int
}
