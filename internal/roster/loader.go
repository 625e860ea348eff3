// Package roster loads host and musician rosters from CSV files kept on disk.
package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Record is one roster row. Columns beyond the well-known ones are kept
// verbatim in Fields so the API can expose whatever the CSV carries.
type Record struct {
	ID            string
	Name          string
	City          string
	Language      string
	Genre         string
	PricePerEvent *int
	PricePerHour  *int
	Fields        map[string]string
}

// ResolvedPrice returns the per-event price when present, then the
// per-hour price, and zero when the record carries no usable price.
func (r *Record) ResolvedPrice() int {
	if r.PricePerEvent != nil {
		return *r.PricePerEvent
	}
	if r.PricePerHour != nil {
		return *r.PricePerHour
	}
	return 0
}

type Loader struct {
	dir string
	log *zap.Logger
}

func NewLoader(dir string, log *zap.Logger) *Loader {
	return &Loader{
		dir: dir,
		log: log.With(zap.String("component", "roster_loader")),
	}
}

// Load reads the named CSV file from the roster directory. A missing
// file is not an error: the roster is simply empty.
func (l *Loader) Load(filename string) ([]*Record, error) {
	path := filepath.Join(l.dir, filename)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.log.Warn("Roster file not found", zap.String("path", path))
			return nil, nil
		}
		l.log.Error("Failed to open roster file", zap.Error(err), zap.String("path", path))
		return nil, fmt.Errorf("open roster file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		l.log.Error("Failed to parse roster file", zap.Error(err), zap.String("path", path))
		return nil, fmt.Errorf("parse roster file %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	if len(header) > 0 {
		// Files exported from spreadsheets often carry a UTF-8 BOM.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i, col := range header {
		header[i] = strings.ToLower(strings.TrimSpace(col))
	}

	var records []*Record
	nextID := 1
	for _, row := range rows[1:] {
		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				fields[col] = strings.TrimSpace(row[i])
			}
		}

		record := &Record{
			ID:            fields["id"],
			Name:          fields["name"],
			City:          fields["city"],
			Language:      fields["language"],
			Genre:         fields["genre"],
			PricePerEvent: parsePrice(fields["price_per_event"]),
			PricePerHour:  parsePrice(fields["price_per_hour"]),
			Fields:        fields,
		}
		// Rows without an explicit ID get a positional one. The counter
		// advances on every row so explicit and synthetic IDs stay aligned
		// with row order.
		if record.ID == "" {
			record.ID = strconv.Itoa(nextID)
		}
		nextID++

		records = append(records, record)
	}

	l.log.Info("Loaded roster file",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)

	return records, nil
}

func parsePrice(value string) *int {
	if value == "" {
		return nil
	}
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil
	}
	return &n
}
