/*
Package watchlist loads the set of watched ticker symbols from a CSV file.
*/
package watchlist

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
)

// LoadTickers reads tickers from the named column of a CSV file. If the
// column is not present, the first column is used instead. Tickers are
// upper-cased and deduplicated; blank cells are skipped.
func LoadTickers(path string, columnName string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open watchlist %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse watchlist %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	if len(header) > 0 {
		// Some spreadsheet exports prefix the file with a UTF-8 BOM.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col := 0
	for i, name := range header {
		if name == columnName {
			col = i
			break
		}
	}

	seen := make(map[string]bool)
	for _, row := range records[1:] {
		if col >= len(row) {
			continue
		}
		ticker := strings.ToUpper(strings.TrimSpace(row[col]))
		if ticker != "" {
			seen[ticker] = true
		}
	}

	tickers := make([]string, 0, len(seen))
	for t := range seen {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	return tickers, nil
}
