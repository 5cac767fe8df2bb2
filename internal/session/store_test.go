// Copyright Inventory Capture Inc., 2026. All rights reserved.

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorycapture/partscout/pkg/types"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Current()
	assert.False(t, ok)
	assert.Empty(t, store.Token())

	sess := types.Session{Username: "jordan", Token: "tok-123"}
	require.NoError(t, store.Save(sess))

	got, ok := store.Current()
	assert.True(t, ok)
	assert.Equal(t, sess, got)
	assert.Equal(t, "tok-123", store.Token())
}

func TestStoreClear(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(types.Session{Username: "jordan", Token: "tok-123"}))
	require.NoError(t, store.Clear())

	_, ok := store.Current()
	assert.False(t, ok)
	assert.Empty(t, store.Token())

	// Clearing an already-empty store is not an error.
	require.NoError(t, store.Clear())
}

func TestTokenReReadsDisk(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(types.Session{Username: "jordan", Token: "tok-old"}))

	// A second handle clearing the credentials must be visible to the
	// first without any caching.
	other, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, other.Clear())

	assert.Empty(t, store.Token())
}
