package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const brandFixture = `brand,Product-Type
A,Dress
A,Top
B,Dress
C,Jacket
A,Jacket
`

func rowValues(d *Dataset, attr string) []string {
	out := make([]string, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		v, _ := d.Value(i, attr)
		out = append(out, v)
	}
	return out
}

func TestApplyKeepsSubsetInSourceOrder(t *testing.T) {
	d := loadFixture(t, brandFixture)

	filtered := Apply(d, Criteria{"brand": {"A", "B"}})
	require.Equal(t, 4, filtered.Len())
	assert.Equal(t, []string{"A", "A", "B", "A"}, rowValues(filtered, "brand"))

	counts := ValueCounts(filtered, "brand")
	assert.Equal(t, FrequencyTable{{Value: "A", Count: 3}, {Value: "B", Count: 1}}, counts)
}

func TestApplyIsIdempotent(t *testing.T) {
	d := loadFixture(t, brandFixture)
	c := Criteria{"brand": {"A"}, "Product-Type": {"Dress", "Jacket"}}

	once := Apply(d, c)
	twice := Apply(once, c)
	assert.Equal(t, rowValues(once, "brand"), rowValues(twice, "brand"))
	assert.Equal(t, once.Len(), twice.Len())
}

func TestApplyFullSelectionIsNoOp(t *testing.T) {
	d := loadFixture(t, brandFixture)

	c := Criteria{
		"brand":        d.DistinctValues("brand"),
		"Product-Type": d.DistinctValues("Product-Type"),
	}
	filtered := Apply(d, c)
	assert.Equal(t, d.Len(), filtered.Len())
	assert.Equal(t, rowValues(d, "brand"), rowValues(filtered, "brand"))
}

func TestApplySelectAllSentinel(t *testing.T) {
	d := loadFixture(t, brandFixture)

	filtered := Apply(d, Criteria{"brand": {SelectAll}})
	assert.Equal(t, d.Len(), filtered.Len())

	// Sentinel alongside other values still means unrestricted.
	filtered = Apply(d, Criteria{"brand": {"A", SelectAll}})
	assert.Equal(t, d.Len(), filtered.Len())
}

func TestApplyEmptyAcceptedSetMatchesNothing(t *testing.T) {
	d := loadFixture(t, brandFixture)

	filtered := Apply(d, Criteria{"brand": {}})
	assert.Equal(t, 0, filtered.Len())
	assert.Empty(t, ValueCounts(filtered, "brand"))
}

func TestApplyIgnoresAbsentAttributes(t *testing.T) {
	d := loadFixture(t, brandFixture)

	filtered := Apply(d, Criteria{"Silhouette": {"Fitted"}, "brand": {"B"}})
	assert.Equal(t, 1, filtered.Len())
}

func TestApplyOrderIndependent(t *testing.T) {
	d := loadFixture(t, brandFixture)

	ab := Apply(Apply(d, Criteria{"brand": {"A"}}), Criteria{"Product-Type": {"Jacket"}})
	ba := Apply(Apply(d, Criteria{"Product-Type": {"Jacket"}}), Criteria{"brand": {"A"}})
	both := Apply(d, Criteria{"brand": {"A"}, "Product-Type": {"Jacket"}})

	assert.Equal(t, rowValues(both, "brand"), rowValues(ab, "brand"))
	assert.Equal(t, rowValues(both, "brand"), rowValues(ba, "brand"))
}

func TestApplyExcludesMissingValues(t *testing.T) {
	d := loadFixture(t, "brand,Sub-Category\nA,Knitwear\nB,\nC,Knitwear\n")

	// A row missing the constrained attribute never matches.
	filtered := Apply(d, Criteria{"Sub-Category": {"Knitwear"}})
	assert.Equal(t, []string{"A", "C"}, rowValues(filtered, "brand"))
}
