package models

import "fashion-dashboard/internal/engine"

// UploadResult acknowledges a parsed catalog upload.
type UploadResult struct {
	ID         string   `json:"id"`
	Rows       int      `json:"rows"`
	Attributes []string `json:"attributes"`
}

// Summary is the metrics row of the dashboard: total products in the
// filtered view plus distinct counts for the headline attributes that are
// actually present in the source.
type Summary struct {
	TotalProducts int            `json:"total_products"`
	Distinct      map[string]int `json:"distinct"`
}

// Frequency is an ordered (label, count) sequence for bar/pie/treemap
// views. Available is false when the requested attribute is not in the
// source — the derivation is skipped, not failed.
type Frequency struct {
	Attribute string         `json:"attribute"`
	Available bool           `json:"available"`
	Total     int            `json:"total"`
	Items     []engine.Entry `json:"items"`
}

// Heatmap is a densified cross-tabulation for heatmap/grouped-bar views.
type Heatmap struct {
	RowAttribute string        `json:"row_attribute"`
	ColAttribute string        `json:"col_attribute"`
	Available    bool          `json:"available"`
	Matrix       engine.Matrix `json:"matrix"`
}

// Options lists the filter choices for one attribute, always computed
// from the raw unfiltered dataset.
type Options struct {
	Attribute string   `json:"attribute"`
	Available bool     `json:"available"`
	Values    []string `json:"values"`
}

// ColumnInfo is the dataset-information view: per-attribute presence.
type ColumnInfo struct {
	Rows    int                       `json:"rows"`
	Columns []engine.AttributeProfile `json:"columns"`
}
