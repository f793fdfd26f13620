package forecast

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"PricePredictor/internal/model"
)

// forecastCount is the number of synthetic rows appended to a window.
const forecastCount = 3

// ErrTooFewDistinctPrices is returned when the window does not carry the
// two distinct price values the heuristic needs for its rank-1 lookup.
var ErrTooFewDistinctPrices = errors.New("window needs at least 2 distinct price values")

// Extend appends three forecasted rows to the sampled window.
//
// The first forecast is the second-highest distinct price in the window.
// The second moves halfway from there toward the last observed price, and
// the third moves a quarter of the way back. Each forecasted row lands one
// calendar day after the previous row and reuses the last row's stock id.
func Extend(window []model.StockRow) ([]model.StockRow, error) {
	if len(window) == 0 {
		return nil, errors.New("empty window")
	}

	distinct := distinctPricesDesc(window)
	if len(distinct) < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewDistinctPrices, len(distinct))
	}

	last := window[len(window)-1]
	n := last.Price

	p0 := distinct[1]
	p1 := round2(p0 + (n-p0)/2)
	p2 := round2(p1 + (p0-p1)/4)

	out := make([]model.StockRow, len(window), len(window)+forecastCount)
	copy(out, window)
	for _, price := range []float64{p0, p1, p2} {
		prev := out[len(out)-1]
		out = append(out, model.StockRow{
			StockID:   prev.StockID,
			Timestamp: prev.Timestamp.AddDate(0, 0, 1),
			Price:     price,
		})
	}
	return out, nil
}

// distinctPricesDesc collapses duplicate prices and sorts descending.
func distinctPricesDesc(rows []model.StockRow) []float64 {
	seen := make(map[float64]struct{}, len(rows))
	prices := make([]float64, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.Price]; ok {
			continue
		}
		seen[r.Price] = struct{}{}
		prices = append(prices, r.Price)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(prices)))
	return prices
}

// round2 rounds to 2 decimal places, matching %.2f fixed formatting.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
