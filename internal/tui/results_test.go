// Copyright Inventory Capture Inc., 2026. All rights reserved.

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorycapture/partscout/internal/results"
	"github.com/inventorycapture/partscout/pkg/types"
)

func record(part, supplier string, cat results.Category) results.Record {
	return results.Record{
		Listing:  types.Listing{PartNumber: part, SupplierName: supplier},
		Category: cat,
	}
}

func testSet() results.ResultSet {
	return results.ResultSet{Records: []results.Record{
		record("XC7A100T", "Arrow", results.CategoryInStock),
		record("XC7A100T", "Chip One", results.CategoryInStock),
		record("XC7A200T", "Arrow", results.CategoryBrokered),
	}}
}

func TestRebuildFlat(t *testing.T) {
	m := newResultsModel(Deps{})
	m.setResults(types.Query{Value: "XC7A"}, testSet())

	// Two section headers plus one record row per listing.
	require.Len(t, m.rows, 5)
	assert.Equal(t, rowSection, m.rows[0].kind)
	assert.Equal(t, "In Stock (2)", m.rows[0].label)
	assert.Equal(t, rowRecord, m.rows[1].kind)
	assert.Equal(t, rowRecord, m.rows[2].kind)
	assert.Equal(t, rowSection, m.rows[3].kind)
	assert.Equal(t, "Brokered (1)", m.rows[3].label)
}

func TestCollapsedSectionHidesRecords(t *testing.T) {
	m := newResultsModel(Deps{})
	m.setResults(types.Query{Value: "XC7A"}, testSet())

	m.expansion.Toggle("instock", true)
	m.rebuild()

	require.Len(t, m.rows, 3)
	assert.Equal(t, "In Stock (2)", m.rows[0].label)
	assert.Equal(t, "Brokered (1)", m.rows[1].label)
}

func TestGroupByPartStartsCollapsed(t *testing.T) {
	m := newResultsModel(Deps{})
	m.setResults(types.Query{Value: "XC7A"}, testSet())
	m.mode = results.GroupByPart
	m.rebuild()

	// Group headers visible, records hidden until expanded.
	var kinds []rowKind
	for _, r := range m.rows {
		kinds = append(kinds, r.kind)
	}
	assert.Equal(t, []rowKind{rowSection, rowGroup, rowSection, rowGroup}, kinds)

	m.expansion.Toggle("instock/XC7A100T", false)
	m.rebuild()

	// Expanding one part reveals its supplier subgroups and records.
	require.Greater(t, len(m.rows), 4)
	assert.Equal(t, rowSubgroup, m.rows[2].kind)
}

func TestCurrentPartFromGroupHeader(t *testing.T) {
	m := newResultsModel(Deps{})
	m.setResults(types.Query{Value: "XC7A"}, testSet())
	m.mode = results.GroupByPart
	m.rebuild()

	m.cursor = 1
	assert.Equal(t, "XC7A100T", m.currentPart())

	m.cursor = 0
	assert.Empty(t, m.currentPart(), "section headers carry no part")
}

func TestSortKeyBindings(t *testing.T) {
	key, ok := sortKeyFor("4")
	require.True(t, ok)
	assert.Equal(t, results.SortQty, key)

	_, ok = sortKeyFor("7")
	assert.False(t, ok)
}
