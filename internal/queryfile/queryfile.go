// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package queryfile saves searches to YAML files and loads them back, so a
// query can be re-run or its results inspected without hitting the API again.
package queryfile

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/inventorycapture/partscout/internal/results"
	"github.com/inventorycapture/partscout/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results.
type QueryFile struct {
	Query   types.Query      `yaml:"query"`
	Results []results.Record `yaml:"results,omitempty"`
	Summary Summary          `yaml:"summary"`
}

// Summary stores result statistics and a timestamp.
type Summary struct {
	Total     int       `yaml:"total"`
	Dropped   int       `yaml:"dropped,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Write saves a query and its decoded results to a YAML file.
func Write(path string, q types.Query, set results.ResultSet) error {
	qf := QueryFile{
		Query:   q,
		Results: set.Records,
		Summary: Summary{
			Total:     set.Total(),
			Dropped:   set.Dropped,
			Timestamp: time.Now(),
		},
	}
	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously saved query file from disk. The embedded query is
// validated so a hand-edited file fails early rather than at the API.
func Read(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	if err := qf.Query.Validate(); err != nil {
		return nil, fmt.Errorf("query file %s: %w", path, err)
	}
	return &qf, nil
}
