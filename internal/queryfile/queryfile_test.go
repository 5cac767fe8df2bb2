// Copyright Inventory Capture Inc., 2026. All rights reserved.

package queryfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorycapture/partscout/internal/results"
	"github.com/inventorycapture/partscout/pkg/types"
)

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	q := types.Query{Field: types.FieldMPN, Match: types.MatchBeginsWith, Value: "XC7A"}
	set := results.ResultSet{
		Records: []results.Record{
			{Listing: types.Listing{PartNumber: "XC7A100T", SupplierName: "Arrow"}, Category: results.CategoryInStock},
		},
		Dropped: 1,
	}

	require.NoError(t, Write(path, q, set))

	qf, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, q, qf.Query)
	require.Len(t, qf.Results, 1)
	assert.Equal(t, "XC7A100T", qf.Results[0].PartNumber)
	assert.Equal(t, 1, qf.Summary.Total)
	assert.Equal(t, 1, qf.Summary.Dropped)
	assert.False(t, qf.Summary.Timestamp.IsZero())
}

func TestReadRejectsInvalidQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query:\n  field: serial\n  match: exact\n  value: XC7A100T\n"), 0o644))

	_, err := Read(path)
	assert.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
