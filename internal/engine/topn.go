package engine

// Rank returns the first min(n, len(t)) entries of an already-ordered
// frequency table; n of zero (or negative) yields an empty table. Callers
// wanting the whole table pass len(t). The descending-count,
// first-occurrence-tiebreak order established by the aggregator is
// preserved untouched.
func Rank(t FrequencyTable, n int) FrequencyTable {
	if n < 0 {
		n = 0
	}
	if n >= len(t) {
		return t
	}
	return t[:n]
}

// Matrix is a densified cross-tabulation for heatmap-style views: every
// kept row×column combination has a cell, with zero where the combination
// was never observed.
type Matrix struct {
	RowLabels []string `json:"row_labels"`
	ColLabels []string `json:"col_labels"`
	Counts    [][]int  `json:"counts"`
}

// Densify narrows a sparse cross-tabulation to the given categories and
// fills in zeros for unobserved combinations among them. Categories outside
// a keep list are dropped entirely, never merged into an "other" bucket.
// A nil keep list keeps every observed category in first-occurrence order;
// a non-nil list also fixes the output order of that dimension. Keep
// entries never observed in the cross-tabulation are skipped.
func Densify(ct *Crosstab, rowKeep, colKeep []string) Matrix {
	rows := keepObserved(ct.rowOrder, ct.rowSeen, rowKeep)
	cols := keepObserved(ct.colOrder, ct.colSeen, colKeep)

	counts := make([][]int, len(rows))
	for i, r := range rows {
		counts[i] = make([]int, len(cols))
		for j, c := range cols {
			counts[i][j] = ct.Count(r, c)
		}
	}
	return Matrix{RowLabels: rows, ColLabels: cols, Counts: counts}
}

func keepObserved(observed []string, seen map[string]bool, keep []string) []string {
	if keep == nil {
		out := make([]string, len(observed))
		copy(out, observed)
		return out
	}
	out := make([]string, 0, len(keep))
	for _, k := range keep {
		if seen[k] {
			out = append(out, k)
		}
	}
	return out
}
