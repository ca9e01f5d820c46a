// Package export serializes a (usually filtered) dataset back into a
// downloadable table. The engine itself has no file-format surface; this
// is the export collaborator that consumes what the pipeline produces.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"fashion-dashboard/internal/engine"
)

// WriteCSV streams the dataset as CSV: attribute header row first, then
// every row in source order. Missing cells are written as empty fields.
func WriteCSV(w io.Writer, d *engine.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(d.Attributes()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < d.Len(); i++ {
		if err := cw.Write(d.Record(i)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
