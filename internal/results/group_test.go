// Copyright Inventory Capture Inc., 2026. All rights reserved.

package results

import "testing"

func TestByPartPartitionsRecords(t *testing.T) {
	records := []Record{
		rec("XC7A100T", "Acme", 1),
		rec("LM317T", "Beta", 2),
		rec("XC7A100T", "GreyCo", 3),
		rec("XC7A100T", "Acme", 4),
	}

	groups := ByPart(records)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	// First-seen key order.
	if groups[0].Key != "XC7A100T" || groups[1].Key != "LM317T" {
		t.Errorf("key order = %q, %q", groups[0].Key, groups[1].Key)
	}

	// The union of records across supplier sub-groups under a part number
	// equals exactly the subset of the flat list with that part number.
	var union []Record
	for _, sub := range groups[0].Sub {
		union = append(union, sub.Records...)
	}
	var want int
	for _, r := range records {
		if r.PartNumber == "XC7A100T" {
			want++
		}
	}
	if len(union) != want || groups[0].Count() != want {
		t.Fatalf("union size = %d (Count %d), want %d", len(union), groups[0].Count(), want)
	}
	for _, r := range union {
		if r.PartNumber != "XC7A100T" {
			t.Errorf("foreign record %q in part group", r.PartNumber)
		}
	}

	// Supplier sub-groups in first-seen order, Acme's two records together.
	if groups[0].Sub[0].Key != "Acme" || len(groups[0].Sub[0].Records) != 2 {
		t.Errorf("sub-group[0] = %q with %d records", groups[0].Sub[0].Key, len(groups[0].Sub[0].Records))
	}
	if groups[0].Sub[1].Key != "GreyCo" {
		t.Errorf("sub-group[1] = %q", groups[0].Sub[1].Key)
	}
}

func TestBySupplierKeepsInsertionOrder(t *testing.T) {
	records := []Record{
		rec("A", "Zeta", 1),
		rec("B", "Acme", 2),
		rec("C", "Zeta", 3),
	}
	groups := BySupplier(records)
	if len(groups) != 2 || groups[0].Key != "Zeta" || groups[1].Key != "Acme" {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if len(groups[0].Records) != 2 {
		t.Errorf("Zeta records = %d, want 2", len(groups[0].Records))
	}
}

func TestGroupModeCycle(t *testing.T) {
	m := GroupFlat
	seen := map[GroupMode]bool{}
	for i := 0; i < 3; i++ {
		seen[m] = true
		m = m.Next()
	}
	if m != GroupFlat || len(seen) != 3 {
		t.Errorf("Next() does not cycle all modes: %v", seen)
	}
}

func TestExpansionDefaultsAndReset(t *testing.T) {
	e := NewExpansion()
	if e.IsOpen("part-group", false) {
		t.Error("group keys should default collapsed")
	}
	if !e.IsOpen("section:inStock", true) {
		t.Error("section keys should default expanded")
	}

	e.Toggle("part-group", false)
	if !e.IsOpen("part-group", false) {
		t.Error("toggle did not expand")
	}

	e.Reset()
	if e.IsOpen("part-group", false) {
		t.Error("reset did not restore defaults")
	}
}
