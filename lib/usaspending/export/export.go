// Package export writes fetched award data to disk as JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"time"
)

func timestampedName(ext string) string {
	return fmt.Sprintf("usaspending_data_%s.%s", time.Now().Format("20060102_150405"), ext)
}

// WriteJSON serializes the whole structure (page metadata included) to
// a pretty-printed file and returns the filename used. An empty
// filename generates a timestamped one.
func WriteJSON(data any, filename string) (string, error) {
	if filename == "" {
		filename = timestampedName("json")
	}

	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	err = os.WriteFile(filename, buf, 0644)
	if err != nil {
		return "", err
	}

	slog.Info("data saved", "filename", filename)
	return filename, nil
}

// WriteCSV writes records under a header derived from the first
// record's keys (sorted, since map order is not stable). With no
// records it writes nothing and returns an empty filename.
func WriteCSV(results []map[string]any, filename string) (string, error) {
	if len(results) == 0 {
		slog.Info("no results to save")
		return "", nil
	}

	header := make([]string, 0, len(results[0]))
	for k := range results[0] {
		header = append(header, k)
	}
	sort.Strings(header)

	return WriteCSVColumns(results, header, filename)
}

// WriteCSVColumns is WriteCSV with an explicit column order, usually
// the field list of the request that produced the records. Values for
// columns a record lacks are written empty; fields outside the column
// set are dropped.
func WriteCSVColumns(results []map[string]any, columns []string, filename string) (string, error) {
	if len(results) == 0 {
		slog.Info("no results to save")
		return "", nil
	}
	if filename == "" {
		filename = timestampedName("csv")
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	err = w.Write(columns)
	if err != nil {
		return "", err
	}
	row := make([]string, len(columns))
	for _, record := range results {
		for i, col := range columns {
			row[i] = formatValue(record[col])
		}
		err = w.Write(row)
		if err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	slog.Info("data saved", "filename", filename, "records", len(results))
	return filename, nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
