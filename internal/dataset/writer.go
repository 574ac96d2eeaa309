// Package dataset writes collected and generated records to flat files.
//
// All writes are all-or-nothing: content is serialized fully in memory,
// written to a temp file in the target directory, then renamed into place.
// A failed run never leaves a partial output file behind.
package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/model"
)

// WriteJSON serializes v as an indented JSON document and atomically
// writes it to path, overwriting any existing file.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')

	return writeFileAtomic(path, data)
}

// WriteRecords writes ticker metadata rows, picking the format from the
// output extension: ".csv" emits CSV, anything else a JSON array.
func WriteRecords(path string, rows []model.TickerRecord) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return writeRecordsCSV(path, rows)
	}
	return WriteJSON(path, rows)
}

func writeRecordsCSV(path string, rows []model.TickerRecord) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"ticker", "name", "price", "currency", "fetched_at"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Ticker,
			r.Name,
			r.Price.String(),
			r.Currency,
			r.FetchedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return writeFileAtomic(path, buf.Bytes())
}

// writeFileAtomic writes data to a uniquely named temp file in path's
// directory and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename into %s: %w", path, err)
	}

	return nil
}
