package engine

// SelectAll is the sentinel accepted value meaning "no restriction from
// this attribute". It mirrors the 'All' entry the filter menus offer.
const SelectAll = "All"

// Criteria maps an attribute name to the set of accepted values for it.
// An attribute absent from the map imposes no restriction; so does an
// accepted set containing SelectAll. Attributes combine with AND. Criteria
// are supplied fresh on every call — no filter state lives in the engine.
type Criteria map[string][]string

// Apply returns the subset of rows satisfying every criteria entry, in
// source order. Criteria keys naming attributes the dataset does not carry
// are ignored. An explicitly empty accepted set matches nothing, so the
// result is empty.
func Apply(d *Dataset, c Criteria) *Dataset {
	type constraint struct {
		attr    string
		allowed map[string]bool
	}

	var constraints []constraint
	for attr, accepted := range c {
		if !d.HasAttribute(attr) {
			continue
		}
		all := false
		allowed := make(map[string]bool, len(accepted))
		for _, v := range accepted {
			if v == SelectAll {
				all = true
				break
			}
			allowed[v] = true
		}
		if all {
			continue
		}
		constraints = append(constraints, constraint{attr: attr, allowed: allowed})
	}

	if len(constraints) == 0 {
		return d
	}

	// Single pass; a row survives only if it has a non-missing, accepted
	// value for every constrained attribute.
	kept := make([][]string, 0, len(d.rows))
	for i := range d.rows {
		pass := true
		for _, con := range constraints {
			v, ok := d.Value(i, con.attr)
			if !ok || !con.allowed[v] {
				pass = false
				break
			}
		}
		if pass {
			kept = append(kept, d.rows[i])
		}
	}

	return &Dataset{attrs: d.attrs, colIndex: d.colIndex, rows: kept}
}
