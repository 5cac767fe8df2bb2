// Copyright Inventory Capture Inc., 2026. All rights reserved.

package results

// GroupMode selects how records are grouped for display. Exactly one mode
// is active at a time; switching modes recomputes the view from the same
// underlying record set.
type GroupMode int

const (
	GroupFlat GroupMode = iota
	GroupByPart
	GroupBySupplier
)

func (m GroupMode) String() string {
	switch m {
	case GroupByPart:
		return "part"
	case GroupBySupplier:
		return "supplier"
	default:
		return "flat"
	}
}

// Next cycles through the grouping modes.
func (m GroupMode) Next() GroupMode {
	return (m + 1) % 3
}

// Group is an ordered bucket of records under one key. For part-number
// grouping, Sub holds the per-supplier sub-groups.
type Group struct {
	Key     string
	Records []Record
	Sub     []Group
}

// Count returns the number of records in the group, descending into
// sub-groups when the records live there.
func (g Group) Count() int {
	if len(g.Sub) == 0 {
		return len(g.Records)
	}
	n := 0
	for _, sub := range g.Sub {
		n += sub.Count()
	}
	return n
}

// ByPart groups records by part number, and within each part by supplier
// name. Keys appear in first-seen order; records keep their relative order.
func ByPart(records []Record) []Group {
	groups, _ := groupBy(records, func(r Record) string { return r.PartNumber })
	for i := range groups {
		sub, _ := groupBy(groups[i].Records, func(r Record) string { return r.SupplierName })
		groups[i].Sub = sub
		groups[i].Records = nil
	}
	return groups
}

// BySupplier groups records by supplier name in first-seen order.
func BySupplier(records []Record) []Group {
	groups, _ := groupBy(records, func(r Record) string { return r.SupplierName })
	return groups
}

func groupBy(records []Record, key func(Record) string) ([]Group, map[string]int) {
	var groups []Group
	index := make(map[string]int)
	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups, index
}
