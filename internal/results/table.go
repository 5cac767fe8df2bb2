// Copyright Inventory Capture Inc., 2026. All rights reserved.

package results

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inventorycapture/partscout/pkg/types"
)

// visibleBreaks is how many price tiers the table shows before truncating
// with a "+N more" affordance.
const visibleBreaks = 3

// FormatTable writes the result set as a human-readable table. Records are
// shown under their category sections (in stock, then brokered), grouped
// according to mode, with the redaction policy applied.
func FormatTable(rs ResultSet, mode GroupMode, rd Redactor, w io.Writer) {
	if rs.Total() == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	inStock, brokered := rs.ByCategory()
	fmt.Fprintf(w, "%d results\n", rs.Total())

	writeSection := func(title string, records []Record) {
		if len(records) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s (%d)\n", title, len(records))
		switch mode {
		case GroupByPart:
			for _, g := range ByPart(records) {
				fmt.Fprintf(w, "\n  %s  [%d listings]\n", g.Key, g.Count())
				for _, sub := range g.Sub {
					fmt.Fprintf(w, "    %s\n", rd.SupplierName(sub.Key))
					writeRows(w, sub.Records, rd, "      ")
				}
			}
		case GroupBySupplier:
			for _, g := range BySupplier(records) {
				fmt.Fprintf(w, "\n  %s  [%d listings]\n", rd.SupplierName(g.Key), len(g.Records))
				writeRows(w, g.Records, rd, "    ")
			}
		default:
			writeRows(w, records, rd, "  ")
		}
	}

	writeSection("In Stock", inStock)
	writeSection("Brokered", brokered)

	if rs.Dropped > 0 {
		fmt.Fprintf(w, "\n(%d record(s) could not be parsed and were skipped)\n", rs.Dropped)
	}
}

func writeRows(w io.Writer, records []Record, rd Redactor, indent string) {
	fmt.Fprintf(w, "%s%-24s  %-14s  %-6s  %10s  %-7s  %-10s  %-18s  %s\n",
		indent, "Part Number", "Manufacturer", "DC", "Qty", "Country", "Uploaded", "Supplier", "Price")
	fmt.Fprintf(w, "%s%s\n", indent, strings.Repeat("-", 110))
	for _, r := range records {
		fmt.Fprintf(w, "%s%-24s  %-14s  %-6s  %10s  %-7s  %-10s  %-18s  %s\n",
			indent,
			Truncate(r.PartNumber, 24),
			Truncate(OrDash(r.Manufacturer), 14),
			Truncate(OrDash(r.DateCode), 6),
			FormatQty(r.Qty),
			rd.Country(r.Country),
			rd.ProcessedAt(r.ProcessedAt),
			Truncate(rd.SupplierName(r.SupplierName), 18),
			FormatBreaks(r.Breaks))
	}
}

// FormatBreaks renders up to three tiers as "qty@$price" pairs, truncating
// with a "+N more" affordance.
func FormatBreaks(breaks []types.PriceBreak) string {
	if len(breaks) == 0 {
		return "-"
	}
	shown := breaks
	if len(shown) > visibleBreaks {
		shown = shown[:visibleBreaks]
	}
	parts := make([]string, 0, len(shown)+1)
	for _, b := range shown {
		parts = append(parts, fmt.Sprintf("%s@$%s", FormatQty(b.Qty), b.Price.StringFixed(4)))
	}
	if rest := len(breaks) - visibleBreaks; rest > 0 {
		parts = append(parts, fmt.Sprintf("(+%d more)", rest))
	}
	return strings.Join(parts, " ")
}

func FormatQty(qty float64) string {
	if qty <= 0 {
		return "-"
	}
	return strconv.FormatFloat(qty, 'f', -1, 64)
}

func OrDash(s string) string {
	if types.IsBlank(s) {
		return "-"
	}
	return s
}

func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// FormatJSON writes the parsed records as indented JSON, price breaks
// already folded into their ordered array form.
func FormatJSON(rs ResultSet, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rs.Records)
}
