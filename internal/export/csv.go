// Package export renders aggregation results as downloadable CSV documents.
package export

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSV renders a header row plus data rows into RFC 4180 CSV text.
func CSV(header []string, rows [][]string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return sb.String(), nil
}
