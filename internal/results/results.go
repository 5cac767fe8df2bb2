// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package results turns raw search responses into renderable views:
// category/region tagging, grouping, sorting, and the redaction policy
// applied to unauthenticated sessions.
package results

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/inventorycapture/partscout/pkg/types"
)

// Category is the inventory classification assigned by the API. The client
// never reclassifies a record.
type Category string

const (
	CategoryNone     Category = ""
	CategoryInStock  Category = "inStock"
	CategoryBrokered Category = "brokered"
)

// Record is one listing tagged with the category and region the API
// delivered it under.
type Record struct {
	types.Listing
	Category Category
	Region   string
}

// ResultSet is the flattened, decode-validated output of one search call.
// Records keep API response order. Dropped counts elements whose serialized
// payload failed to parse; those are logged and excluded, never surfaced.
type ResultSet struct {
	Records []Record
	Dropped int
}

// Total is the number of successfully parsed records.
func (rs ResultSet) Total() int { return len(rs.Records) }

// Decode flattens any of the three response envelopes into a ResultSet.
// Regional buckets flatten in the fixed region order; within a region (or a
// plain categorized response) in-stock precedes brokered.
func Decode(resp types.SearchResponse, logger *zap.Logger) ResultSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	var rs ResultSet

	appendItems := func(items []types.SearchItem, cat Category, region string) {
		for _, it := range items {
			if it.Item == "" {
				continue
			}
			var l types.Listing
			if err := json.Unmarshal([]byte(it.Item), &l); err != nil {
				rs.Dropped++
				logger.Warn("dropping unparseable result record",
					zap.String("region", region),
					zap.String("category", string(cat)),
					zap.Error(err))
				continue
			}
			rs.Records = append(rs.Records, Record{Listing: l, Category: cat, Region: region})
		}
	}

	switch {
	case resp.Regions != nil:
		for _, region := range types.RegionOrder {
			bucket, ok := resp.Regions[region]
			if !ok {
				continue
			}
			appendItems(bucket.InStock, CategoryInStock, region)
			appendItems(bucket.Brokered, CategoryBrokered, region)
		}
	case resp.Bucket != nil:
		appendItems(resp.Bucket.InStock, CategoryInStock, "")
		appendItems(resp.Bucket.Brokered, CategoryBrokered, "")
	default:
		appendItems(resp.Items, CategoryNone, "")
	}
	return rs
}

// ByCategory splits records into in-stock and brokered slices, preserving
// order. Unclassified records land in the in-stock slice.
func (rs ResultSet) ByCategory() (inStock, brokered []Record) {
	for _, r := range rs.Records {
		if r.Category == CategoryBrokered {
			brokered = append(brokered, r)
		} else {
			inStock = append(inStock, r)
		}
	}
	return inStock, brokered
}
