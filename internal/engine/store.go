package engine

import (
	"sort"
	"strings"
)

// Dataset is an immutable view of one uploaded catalog: the attribute names
// discovered from the header row plus every data row in source order.
// Filtered datasets share the backing rows of their source, so derivations
// never copy cell data.
type Dataset struct {
	attrs    []string
	colIndex map[string]int
	rows     [][]string
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Attributes returns the attribute names in header order.
func (d *Dataset) Attributes() []string { return d.attrs }

// HasAttribute reports whether the source carried a column with this name.
// Absent columns are a normal state, not an error; callers check here once
// before asking for any derived table.
func (d *Dataset) HasAttribute(name string) bool {
	_, ok := d.colIndex[name]
	return ok
}

// Value returns the cell for (row, attribute). The second return is false
// when the attribute is absent, the row is short, or the cell is empty
// after trimming — all of which count as missing.
func (d *Dataset) Value(row int, attr string) (string, bool) {
	col, ok := d.colIndex[attr]
	if !ok || row < 0 || row >= len(d.rows) {
		return "", false
	}
	cells := d.rows[row]
	if col >= len(cells) {
		return "", false
	}
	v := strings.TrimSpace(cells[col])
	if v == "" {
		return "", false
	}
	return v, true
}

// Record returns one row's cells aligned to Attributes(), with missing
// cells as empty strings. Used by the export serializers.
func (d *Dataset) Record(row int) []string {
	out := make([]string, len(d.attrs))
	if row < 0 || row >= len(d.rows) {
		return out
	}
	cells := d.rows[row]
	for i, attr := range d.attrs {
		col := d.colIndex[attr]
		if col < len(cells) {
			out[i] = strings.TrimSpace(cells[col])
		}
	}
	return out
}

// DistinctValues returns the sorted distinct non-missing values of an
// attribute. Filter option menus call this on the raw dataset, never a
// filtered one, so the choices never shrink as other filters are applied.
func (d *Dataset) DistinctValues(attr string) []string {
	if !d.HasAttribute(attr) {
		return nil
	}
	seen := make(map[string]bool)
	var values []string
	for i := range d.rows {
		v, ok := d.Value(i, attr)
		if ok && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

// DistinctCount returns the number of distinct non-missing values.
func (d *Dataset) DistinctCount(attr string) int {
	return len(d.DistinctValues(attr))
}

// AttributeProfile summarizes value presence for one attribute.
type AttributeProfile struct {
	Name       string `json:"name"`
	NonMissing int    `json:"non_missing"`
	Missing    int    `json:"missing"`
}

// Profile returns, per attribute, how many rows have a non-missing value
// and how many do not. Feeds the dataset-information view.
func (d *Dataset) Profile() []AttributeProfile {
	profiles := make([]AttributeProfile, 0, len(d.attrs))
	for _, attr := range d.attrs {
		p := AttributeProfile{Name: attr}
		for i := range d.rows {
			if _, ok := d.Value(i, attr); ok {
				p.NonMissing++
			} else {
				p.Missing++
			}
		}
		profiles = append(profiles, p)
	}
	return profiles
}
