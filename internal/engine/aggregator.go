package engine

import "sort"

// Entry is one (value, count) pair of a frequency table.
type Entry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FrequencyTable is an ordered frequency table: counts descending, ties
// broken by first occurrence in the source. No value appears twice.
type FrequencyTable []Entry

// Total returns the sum of all counts.
func (t FrequencyTable) Total() int {
	total := 0
	for _, e := range t {
		total += e.Count
	}
	return total
}

// tally accumulates counts while remembering first-occurrence order, then
// sorts by count descending with a stable sort. Ties therefore keep the
// order values first appeared in — deterministic and independent of any
// incidental alphabetic grouping.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(v string) {
	if _, seen := t.counts[v]; !seen {
		t.order = append(t.order, v)
	}
	t.counts[v]++
}

func (t *tally) table() FrequencyTable {
	out := make(FrequencyTable, 0, len(t.order))
	for _, v := range t.order {
		out = append(out, Entry{Value: v, Count: t.counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// ValueCounts tallies the non-missing values of a scalar attribute. The
// sum of counts equals the number of rows where the attribute is
// non-missing. Returns an empty table when the attribute is absent.
func ValueCounts(d *Dataset, attr string) FrequencyTable {
	t := newTally()
	for i := 0; i < d.Len(); i++ {
		if v, ok := d.Value(i, attr); ok {
			t.add(v)
		}
	}
	return t.table()
}

// CountValues runs the same tally over exploded observations, so the
// multi-valued attribute shares ordering rules with scalar ones.
func CountValues(obs []Observation) FrequencyTable {
	t := newTally()
	for _, o := range obs {
		t.add(o.Value)
	}
	return t.table()
}

// Crosstab is a sparse joint-occurrence count over two attributes. Only
// observed combinations carry cells; zero-filling for dense display is the
// densification step's job, not the aggregator's. Row and column category
// order is first occurrence in the source.
type Crosstab struct {
	cells    map[Pair]int
	rowOrder []string
	colOrder []string
	rowSeen  map[string]bool
	colSeen  map[string]bool
}

func newCrosstab() *Crosstab {
	return &Crosstab{
		cells:   make(map[Pair]int),
		rowSeen: make(map[string]bool),
		colSeen: make(map[string]bool),
	}
}

func (ct *Crosstab) add(a, b string) {
	if !ct.rowSeen[a] {
		ct.rowSeen[a] = true
		ct.rowOrder = append(ct.rowOrder, a)
	}
	if !ct.colSeen[b] {
		ct.colSeen[b] = true
		ct.colOrder = append(ct.colOrder, b)
	}
	ct.cells[Pair{A: a, B: b}]++
}

// Count returns the observed count for a combination, zero if unobserved.
func (ct *Crosstab) Count(a, b string) int { return ct.cells[Pair{A: a, B: b}] }

// RowCategories returns row categories in first-occurrence order.
func (ct *Crosstab) RowCategories() []string { return ct.rowOrder }

// ColCategories returns column categories in first-occurrence order.
func (ct *Crosstab) ColCategories() []string { return ct.colOrder }

// Cells returns the number of observed combinations.
func (ct *Crosstab) Cells() int { return len(ct.cells) }

// CrossTab counts joint occurrences of two scalar attributes over rows
// where both are non-missing. Rows missing either side are excluded here
// but still counted by ValueCounts of the other attribute alone; that
// divergence is intended.
func CrossTab(d *Dataset, attrA, attrB string) *Crosstab {
	ct := newCrosstab()
	for i := 0; i < d.Len(); i++ {
		a, ok := d.Value(i, attrA)
		if !ok {
			continue
		}
		b, ok := d.Value(i, attrB)
		if !ok {
			continue
		}
		ct.add(a, b)
	}
	return ct
}

// CrossTabPairs runs the same tally over exploded (tag, scalar) pairs.
func CrossTabPairs(pairs []Pair) *Crosstab {
	ct := newCrosstab()
	for _, p := range pairs {
		ct.add(p.A, p.B)
	}
	return ct
}
