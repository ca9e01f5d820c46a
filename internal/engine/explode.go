package engine

import "strings"

// DefaultDelimiter separates tags inside the multi-valued attribute.
const DefaultDelimiter = ","

// Observation is one atomic tag produced by splitting a multi-valued cell,
// carrying the index of the row it came from.
type Observation struct {
	Row   int
	Value string
}

// Pair is one (tag, scalar) co-occurrence used for cross-tabulating the
// multi-valued attribute against a scalar one.
type Pair struct {
	A string
	B string
}

// Explode splits the multi-valued attribute of every row on delim, trims
// each token, and drops tokens that are empty after trimming (a trailing
// delimiter contributes nothing). Rows missing the attribute contribute
// nothing. This is the only place delimiter semantics are interpreted;
// the source cells are never rewritten.
func Explode(d *Dataset, attr, delim string) []Observation {
	if delim == "" {
		delim = DefaultDelimiter
	}
	var obs []Observation
	for i := 0; i < d.Len(); i++ {
		raw, ok := d.Value(i, attr)
		if !ok {
			continue
		}
		for _, token := range strings.Split(raw, delim) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			obs = append(obs, Observation{Row: i, Value: token})
		}
	}
	return obs
}

// ExplodePaired emits one Pair per (tag, scalar value) co-occurrence: each
// tag of a row is paired with that row's value for scalarAttr. Rows where
// either side is missing contribute nothing. A row with two tags yields
// two pairs, so it is counted once per tag downstream.
func ExplodePaired(d *Dataset, multiAttr, scalarAttr, delim string) []Pair {
	if delim == "" {
		delim = DefaultDelimiter
	}
	var pairs []Pair
	for i := 0; i < d.Len(); i++ {
		raw, ok := d.Value(i, multiAttr)
		if !ok {
			continue
		}
		scalar, ok := d.Value(i, scalarAttr)
		if !ok {
			continue
		}
		for _, token := range strings.Split(raw, delim) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			pairs = append(pairs, Pair{A: token, B: scalar})
		}
	}
	return pairs
}
