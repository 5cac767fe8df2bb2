// Copyright Inventory Capture Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
)

// MinQueryLength is the shortest query the API accepts. Shorter input is
// rejected client-side before any network call.
const MinQueryLength = 3

// SearchField selects which record field the server matches against.
type SearchField string

const (
	FieldMPN          SearchField = "mpn"
	FieldManufacturer SearchField = "manufacturer"
)

// MatchType selects prefix versus full-string matching on the server.
type MatchType string

const (
	MatchExact      MatchType = "exact"
	MatchBeginsWith MatchType = "begins_with"
)

// Query holds one search invocation's parameters. Immutable once built.
type Query struct {
	Field SearchField `json:"field" yaml:"field"`
	Match MatchType   `json:"match" yaml:"match"`
	Value string      `json:"value" yaml:"value"`
}

// Validate checks the query before it is sent.
func (q Query) Validate() error {
	switch q.Field {
	case FieldMPN, FieldManufacturer:
	default:
		return fmt.Errorf("invalid search field %q: use mpn or manufacturer", q.Field)
	}
	switch q.Match {
	case MatchExact, MatchBeginsWith:
	default:
		return fmt.Errorf("invalid match type %q: use exact or begins_with", q.Match)
	}
	if len(q.Value) < MinQueryLength {
		return fmt.Errorf("query %q too short: need at least %d characters", q.Value, MinQueryLength)
	}
	return nil
}

// SearchRequest is the wire body for POST /search.
type SearchRequest struct {
	SearchType   MatchType   `json:"search_type"`
	SearchSource string      `json:"search_source"`
	Field        SearchField `json:"field"`
	FieldValue   string      `json:"field_value"`
}

// SearchItem wraps one result element. Item is itself a serialized Listing
// requiring a second decode step; PartNumber and NumResults arrive alongside
// it on suggestion queries issued from the search bar.
type SearchItem struct {
	Item       string `json:"item"`
	PartNumber string `json:"part_number"`
	NumResults int    `json:"numResults"`
}

// Bucket splits listings into the two inventory categories the API assigns.
type Bucket struct {
	InStock  []SearchItem `json:"inStock"`
	Brokered []SearchItem `json:"brokered"`
}

// RegionOrder lists regions in the order the regional envelope presents them.
var RegionOrder = []string{"americas", "europe", "asia"}

// SearchResponse is the normalized decode of the three envelope shapes the
// deployment returns: a flat items list, a categorized bucket, or per-region
// buckets. At most one of Items, Bucket, Regions is populated.
type SearchResponse struct {
	NumResults int
	Items      []SearchItem
	Bucket     *Bucket
	Regions    map[string]Bucket
}

// searchEnvelope is the raw wire shape; Results is deferred because it holds
// either a Bucket or a region map depending on the deployment.
type searchEnvelope struct {
	NumResults int             `json:"numResults"`
	Items      []SearchItem    `json:"items"`
	Results    json.RawMessage `json:"results"`
}

// UnmarshalJSON detects which envelope variant arrived and normalizes it.
func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	var env searchEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	*r = SearchResponse{NumResults: env.NumResults, Items: env.Items}

	if len(env.Results) == 0 || string(env.Results) == "null" {
		return nil
	}

	// A regional envelope keys results by region name; a categorized one
	// keys them by inventory category. Probe for region keys first.
	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(env.Results, &keyed); err != nil {
		return fmt.Errorf("parsing results envelope: %w", err)
	}
	isRegional := false
	for _, region := range RegionOrder {
		if _, ok := keyed[region]; ok {
			isRegional = true
			break
		}
	}

	if isRegional {
		r.Regions = make(map[string]Bucket, len(keyed))
		for _, region := range RegionOrder {
			raw, ok := keyed[region]
			if !ok {
				continue
			}
			var b Bucket
			if err := json.Unmarshal(raw, &b); err != nil {
				return fmt.Errorf("parsing %s results: %w", region, err)
			}
			r.Regions[region] = b
		}
		return nil
	}

	var b Bucket
	if err := json.Unmarshal(env.Results, &b); err != nil {
		return fmt.Errorf("parsing results: %w", err)
	}
	r.Bucket = &b
	return nil
}

// Suggestion is one incremental-search dropdown candidate.
type Suggestion struct {
	PartNumber string `json:"part_number"`
	NumResults int    `json:"numResults"`
}
