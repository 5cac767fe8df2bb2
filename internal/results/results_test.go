// Copyright Inventory Capture Inc., 2026. All rights reserved.

package results

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/inventorycapture/partscout/pkg/types"
)

func mustResponse(t *testing.T, raw string) types.SearchResponse {
	t.Helper()
	var resp types.SearchResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	return resp
}

func item(t *testing.T, l map[string]any) string {
	t.Helper()
	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshaling item: %v", err)
	}
	return string(data)
}

func TestDecodeFlatItems(t *testing.T) {
	inner := item(t, map[string]any{"part_number": "XC7A100T", "qty": 40, "supplier_name": "Acme"})
	raw, _ := json.Marshal(map[string]any{
		"items": []map[string]any{{"item": inner}},
	})

	rs := Decode(mustResponse(t, string(raw)), nil)
	if rs.Total() != 1 {
		t.Fatalf("Total() = %d, want 1", rs.Total())
	}
	r := rs.Records[0]
	if r.PartNumber != "XC7A100T" || r.Qty != 40 || r.Category != CategoryNone {
		t.Errorf("unexpected record %+v", r)
	}
}

func TestDecodeDropsMalformedItems(t *testing.T) {
	good := item(t, map[string]any{"part_number": "LM317T", "qty": 10})
	raw, _ := json.Marshal(map[string]any{
		"items": []map[string]any{
			{"item": good},
			{"item": "{not json"},
			{"item": good},
			{"item": "[1,2,3]"},
		},
	})

	rs := Decode(mustResponse(t, string(raw)), nil)
	// Displayed count equals successfully parsed items only.
	if rs.Total() != 2 {
		t.Errorf("Total() = %d, want 2", rs.Total())
	}
	if rs.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", rs.Dropped)
	}
}

func TestDecodeCategorizedEnvelope(t *testing.T) {
	inStock := item(t, map[string]any{"part_number": "XC7A100T", "supplier_name": "Acme"})
	brokered := item(t, map[string]any{"part_number": "XC7A100T", "supplier_name": "GreyCo"})
	raw := `{"results":{"inStock":[{"item":` + mustQuote(inStock) + `},{"item":` + mustQuote(inStock) + `}],"brokered":[{"item":` + mustQuote(brokered) + `}]}}`

	rs := Decode(mustResponse(t, raw), nil)
	if rs.Total() != 3 {
		t.Fatalf("Total() = %d, want 3", rs.Total())
	}
	gotIn, gotBrok := rs.ByCategory()
	if len(gotIn) != 2 || len(gotBrok) != 1 {
		t.Errorf("ByCategory() = %d in stock, %d brokered; want 2, 1", len(gotIn), len(gotBrok))
	}
}

func TestDecodeRegionalEnvelopeKeepsRegionOrder(t *testing.T) {
	mk := func(pn string) string {
		return mustQuote(item(t, map[string]any{"part_number": pn}))
	}
	raw := `{"numResults":3,"results":{
		"asia":{"inStock":[{"item":` + mk("C") + `}]},
		"americas":{"inStock":[{"item":` + mk("A") + `}]},
		"europe":{"brokered":[{"item":` + mk("B") + `}]}}}`

	rs := Decode(mustResponse(t, raw), nil)
	var got []string
	for _, r := range rs.Records {
		got = append(got, r.PartNumber+"/"+r.Region)
	}
	want := []string{"A/americas", "B/europe", "C/asia"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("flatten order = %v, want %v", got, want)
	}
}

func mustQuote(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

func TestEndToEndScenario(t *testing.T) {
	// begins_with search for XC7A100T: two in-stock records and one
	// brokered. One in-stock record carries a valid price pair.
	withPrices := item(t, map[string]any{
		"part_number": "XC7A100T-1FTG256C", "qty": 25, "supplier_name": "Acme",
		"break_qty_a": 1, "price_a": 12.5,
		"break_qty_b": 10, "price_b": 11.0,
	})
	noPrices := item(t, map[string]any{
		"part_number": "XC7A100T-2FGG484I", "qty": 5, "supplier_name": "Beta",
		"break_qty_a": 1, "price_a": 0, // zero price: no valid pair
	})
	brokered := item(t, map[string]any{
		"part_number": "XC7A100T-1CSG324C", "qty": 100, "supplier_name": "GreyCo",
	})
	raw := `{"results":{"inStock":[{"item":` + mustQuote(withPrices) + `},{"item":` + mustQuote(noPrices) + `}],"brokered":[{"item":` + mustQuote(brokered) + `}]}}`

	rs := Decode(mustResponse(t, raw), nil)
	if rs.Total() != 3 {
		t.Fatalf("total = %d, want 3", rs.Total())
	}
	inStock, brok := rs.ByCategory()
	if len(inStock) != 2 || len(brok) != 1 {
		t.Fatalf("categories = %d/%d, want 2/1", len(inStock), len(brok))
	}
	if n := len(inStock[0].Breaks); n != 2 {
		t.Errorf("price breaks on first record = %d, want 2", n)
	}
	if n := len(inStock[1].Breaks); n != 0 {
		t.Errorf("price breaks on zero-price record = %d, want 0", n)
	}

	var buf strings.Builder
	FormatTable(rs, GroupFlat, Redactor{Authenticated: true}, &buf)
	out := buf.String()
	if !strings.Contains(out, "3 results") {
		t.Errorf("table missing total count:\n%s", out)
	}
	if !strings.Contains(out, "In Stock (2)") || !strings.Contains(out, "Brokered (1)") {
		t.Errorf("table missing category sections:\n%s", out)
	}
	if !strings.Contains(out, "1@$12.5000") {
		t.Errorf("table missing price break row:\n%s", out)
	}
}
