package exporter

import (
	"strconv"

	"PricePredictor/internal/model"
)

// dateLayout is the DD-MM-YYYY form used in output files.
const dateLayout = "02-01-2006"

// FormatRows converts typed rows to display strings ready for CSV
// serialization, preserving row and field order (id, date, price).
func FormatRows(rows []model.StockRow) [][]string {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{
			r.StockID,
			r.Timestamp.Format(dateLayout),
			strconv.FormatFloat(r.Price, 'f', 2, 64),
		}
	}
	return records
}
