// Copyright Inventory Capture Inc., 2026. All rights reserved.

package results

import (
	"sort"
	"strconv"
	"strings"
)

// SortKey names a sortable column.
type SortKey string

const (
	SortNone       SortKey = ""
	SortPartNumber SortKey = "part_number"
	SortMfr        SortKey = "mfr"
	SortDateCode   SortKey = "dc"
	SortQty        SortKey = "qty"
	SortSupplier   SortKey = "supplier_name"
	SortCountry    SortKey = "country"
)

// Direction of an active sort.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// SortState is the single active (key, direction) pair. It applies uniformly
// to every record list currently displayed.
type SortState struct {
	Key       SortKey
	Direction Direction
}

// Toggle applies a column selection: the same key flips direction, a new key
// resets to ascending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key && s.Direction == Asc {
		return SortState{Key: key, Direction: Desc}
	}
	return SortState{Key: key, Direction: Asc}
}

// Apply sorts records in place. Quantity compares numerically (unparseable
// values count as 0); string keys compare case-insensitively. The sort is
// stable so ties keep their prior relative order.
func (s SortState) Apply(records []Record) {
	if s.Key == SortNone {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		less := s.less(records[i], records[j])
		if s.Direction == Desc {
			return s.less(records[j], records[i])
		}
		return less
	})
}

func (s SortState) less(a, b Record) bool {
	if s.Key == SortQty {
		return a.Qty < b.Qty
	}
	av := strings.ToLower(s.fieldOf(a))
	bv := strings.ToLower(s.fieldOf(b))
	return av < bv
}

func (s SortState) fieldOf(r Record) string {
	switch s.Key {
	case SortPartNumber:
		return r.PartNumber
	case SortMfr:
		return r.Manufacturer
	case SortDateCode:
		return r.DateCode
	case SortSupplier:
		return r.SupplierName
	case SortCountry:
		return r.Country
	case SortQty:
		return strconv.FormatFloat(r.Qty, 'f', -1, 64)
	default:
		return ""
	}
}

// ParseSortKey maps a user-supplied column name to a SortKey.
func ParseSortKey(name string) (SortKey, bool) {
	switch SortKey(name) {
	case SortPartNumber, SortMfr, SortDateCode, SortQty, SortSupplier, SortCountry:
		return SortKey(name), true
	}
	return SortNone, false
}
