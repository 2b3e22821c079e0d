package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"spinesel/internal/tree"
)

// ExportCSV writes rows as CSV with the standard coordinate header followed
// by the tree's column names. NaN values export as empty cells.
func ExportCSV(w io.Writer, columns []string, rows []tree.Row) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := append([]string{"run", "subrun", "event", "interaction"}, columns...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if len(row.Values) != len(columns) {
			return fmt.Errorf("row has %d values, expected %d", len(row.Values), len(columns))
		}
		record := make([]string, 0, len(header))
		record = append(record,
			strconv.FormatInt(row.Run, 10),
			strconv.FormatInt(row.Subrun, 10),
			strconv.FormatInt(row.Event, 10),
			strconv.FormatInt(row.Interaction, 10))
		for _, v := range row.Values {
			if math.IsNaN(v) {
				record = append(record, "")
				continue
			}
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
