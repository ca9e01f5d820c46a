package engine

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// ErrDataFormat is returned when no header row can be established for a
// source. It is the only fatal condition the engine raises; every other
// irregularity (missing columns, ragged rows, empty cells) is tolerated.
var ErrDataFormat = errors.New("unrecognized data format")

// Load parses a CSV source into a Dataset.
//
// Attribute names are trimmed of surrounding whitespace, so two columns
// differing only in padding are the same attribute. A UTF-8 BOM on the
// first header cell is stripped. Ragged rows are kept; short rows simply
// read as missing for the trailing attributes. The dataset is immutable
// after this returns.
func Load(r io.Reader) (*Dataset, error) {
	start := time.Now()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: no header row: %v", ErrDataFormat, err)
	}

	attrs := make([]string, 0, len(header))
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = string(bytes.TrimPrefix([]byte(name), []byte{0xEF, 0xBB, 0xBF}))
		}
		name = strings.TrimSpace(name)
		attrs = append(attrs, name)
		if _, dup := colIndex[name]; !dup {
			colIndex[name] = i
		}
	}

	empty := true
	for _, a := range attrs {
		if a != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil, fmt.Errorf("%w: header row is blank", ErrDataFormat)
	}

	var rows [][]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDataFormat, len(rows)+2, err)
		}
		rows = append(rows, record)
	}

	slog.Info("catalog loaded",
		slog.Int("rows", len(rows)),
		slog.Int("attributes", len(attrs)),
		slog.Duration("took", time.Since(start)))

	return &Dataset{attrs: attrs, colIndex: colIndex, rows: rows}, nil
}
