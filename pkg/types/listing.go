// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package types defines shared data structures for the partscout client:
// distributor listings, search queries and response envelopes, sessions,
// and supplier records.
package types

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxPriceBreaks is the number of tier slots the upstream feed carries
// (suffixed fields a through e).
const maxPriceBreaks = 5

// PriceBreak is one quantity/price tier on a listing. Tiers are ordered by
// ascending quantity threshold as delivered by the feed.
type PriceBreak struct {
	Qty   float64         `json:"qty"`
	Price decimal.Decimal `json:"price"`
}

// Listing is a single distributor/part record as returned by the search API.
// The wire format names the price tiers with letter suffixes (break_qty_a,
// price_a, ...); UnmarshalJSON folds them into the ordered Breaks slice so
// downstream code never does suffix lookups.
type Listing struct {
	PartNumber   string       `json:"part_number"`
	Manufacturer string       `json:"mfr"`
	DateCode     string       `json:"dc"`
	Description  string       `json:"description"`
	Qty          float64      `json:"qty"`
	Country      string       `json:"country"`
	SupplierID   string       `json:"supplier_id"`
	SupplierName string       `json:"supplier_name"`
	SupplierCode string       `json:"supplier_code"`
	ProcessedAt  string       `json:"processed_at"`
	Link         string       `json:"link,omitempty"`
	Breaks       []PriceBreak `json:"price_breaks,omitempty"`
}

// listingWire mirrors the raw feed record. Numeric fields arrive as either
// JSON numbers or strings depending on the supplier's upload, so they decode
// through flexFloat/flexString.
type listingWire struct {
	PartNumber   string     `json:"part_number"`
	Manufacturer string     `json:"mfr"`
	DateCode     flexString `json:"dc"`
	Description  string     `json:"description"`
	Qty          flexFloat  `json:"qty"`
	Country      string     `json:"country"`
	SupplierID   flexString `json:"supplier_id"`
	SupplierName string     `json:"supplier_name"`
	SupplierCode flexString `json:"supplier_code"`
	ProcessedAt  string     `json:"processed_at"`
	Link         string     `json:"link"`

	BreakQtyA flexFloat        `json:"break_qty_a"`
	BreakQtyB flexFloat        `json:"break_qty_b"`
	BreakQtyC flexFloat        `json:"break_qty_c"`
	BreakQtyD flexFloat        `json:"break_qty_d"`
	BreakQtyE flexFloat        `json:"break_qty_e"`
	PriceA    *decimal.Decimal `json:"price_a"`
	PriceB    *decimal.Decimal `json:"price_b"`
	PriceC    *decimal.Decimal `json:"price_c"`
	PriceD    *decimal.Decimal `json:"price_d"`
	PriceE    *decimal.Decimal `json:"price_e"`
}

// UnmarshalJSON decodes a raw feed record. A tier is kept only when both its
// quantity threshold and price are present and the price is strictly positive.
func (l *Listing) UnmarshalJSON(data []byte) error {
	var w listingWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*l = Listing{
		PartNumber:   w.PartNumber,
		Manufacturer: w.Manufacturer,
		DateCode:     string(w.DateCode),
		Description:  w.Description,
		Qty:          float64(w.Qty),
		Country:      w.Country,
		SupplierID:   string(w.SupplierID),
		SupplierName: w.SupplierName,
		SupplierCode: string(w.SupplierCode),
		ProcessedAt:  w.ProcessedAt,
		Link:         w.Link,
	}

	qtys := [maxPriceBreaks]flexFloat{w.BreakQtyA, w.BreakQtyB, w.BreakQtyC, w.BreakQtyD, w.BreakQtyE}
	prices := [maxPriceBreaks]*decimal.Decimal{w.PriceA, w.PriceB, w.PriceC, w.PriceD, w.PriceE}
	for i := 0; i < maxPriceBreaks; i++ {
		if qtys[i] == 0 || prices[i] == nil || !prices[i].IsPositive() {
			continue
		}
		l.Breaks = append(l.Breaks, PriceBreak{Qty: float64(qtys[i]), Price: *prices[i]})
	}
	return nil
}

// IsBlank reports whether a feed field value should render as absent. Supplier
// spreadsheets frequently carry the literal string "nan" in empty cells.
func IsBlank(s string) bool {
	return s == "" || strings.EqualFold(s, "nan")
}

// flexFloat decodes a JSON number or a numeric string. Unparseable values
// decode to 0 rather than failing the record.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// flexString decodes a JSON string or number into a string.
type flexString string

func (fs *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*fs = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*fs = flexString(s)
		return nil
	}
	*fs = flexString(string(data))
	return nil
}
