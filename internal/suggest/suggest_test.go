// Copyright Inventory Capture Inc., 2026. All rights reserved.

package suggest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorycapture/partscout/pkg/types"
)

// recordingFetch counts calls and records the values fetched.
type recordingFetch struct {
	mu      sync.Mutex
	values  []string
	results []types.Suggestion
	block   chan struct{} // when non-nil, fetch waits on it
}

func (f *recordingFetch) fetch(_ context.Context, q types.Query) ([]types.Suggestion, error) {
	f.mu.Lock()
	f.values = append(f.values, q.Value)
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.results, nil
}

func (f *recordingFetch) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.values...)
}

func testConfig() Config {
	return Config{Window: 30 * time.Millisecond, Grace: 20 * time.Millisecond}
}

// waitResult reads the next non-clear result, skipping dropdown clears.
func waitResult(t *testing.T, e *Engine) Result {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case r := <-e.Results():
			if len(r.Suggestions) > 0 || r.Err != nil {
				return r
			}
		case <-deadline:
			t.Fatal("timed out waiting for a suggestion result")
		}
	}
}

func TestDebounceCoalescesKeystrokes(t *testing.T) {
	f := &recordingFetch{results: []types.Suggestion{{PartNumber: "ABC123", NumResults: 4}}}
	e := NewEngine(f.fetch, testConfig())
	defer e.Close()
	e.Focus()

	// Keystrokes spaced inside the debounce window: only the final value
	// triggers a fetch.
	for _, v := range []string{"A", "AB", "ABC"} {
		e.Keystroke(v)
		time.Sleep(10 * time.Millisecond)
	}

	r := waitResult(t, e)
	assert.Equal(t, "ABC", r.Query)
	assert.Equal(t, []types.Suggestion{{PartNumber: "ABC123", NumResults: 4}}, r.Suggestions)
	assert.Equal(t, []string{"ABC"}, f.calls())
}

func TestShortQueryClearsWithoutFetch(t *testing.T) {
	f := &recordingFetch{}
	e := NewEngine(f.fetch, testConfig())
	defer e.Close()
	e.Focus()

	e.Keystroke("AB")

	select {
	case r := <-e.Results():
		assert.Empty(t, r.Suggestions)
		assert.NoError(t, r.Err)
	case <-time.After(time.Second):
		t.Fatal("no clear result delivered")
	}
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, f.calls())
}

func TestUnfocusedInputDoesNotFetch(t *testing.T) {
	f := &recordingFetch{}
	e := NewEngine(f.fetch, testConfig())
	defer e.Close()

	e.Keystroke("ABCDEF")
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, f.calls())
}

func TestStaleResponseDiscarded(t *testing.T) {
	block := make(chan struct{})
	f := &recordingFetch{results: []types.Suggestion{{PartNumber: "STALE"}}, block: block}
	e := NewEngine(f.fetch, testConfig())
	defer e.Close()
	e.Focus()

	e.Keystroke("AAA")
	// Let the debounce fire and the fetch park on the block channel.
	time.Sleep(60 * time.Millisecond)

	// A newer keystroke invalidates the in-flight fetch, then releasing
	// the block lets the stale fetch complete.
	f.mu.Lock()
	f.block = nil
	f.results = []types.Suggestion{{PartNumber: "FRESH"}}
	f.mu.Unlock()
	e.Keystroke("BBB")
	close(block)

	r := waitResult(t, e)
	assert.Equal(t, "BBB", r.Query)
	require.Len(t, r.Suggestions, 1)
	assert.Equal(t, "FRESH", r.Suggestions[0].PartNumber)
}

func TestCommitYieldsExactMatchQuery(t *testing.T) {
	f := &recordingFetch{}
	e := NewEngine(f.fetch, testConfig())
	defer e.Close()
	e.Focus()

	q := e.Commit("XC7A100T-1FTG256C")
	assert.Equal(t, types.Query{
		Field: types.FieldMPN,
		Match: types.MatchExact,
		Value: "XC7A100T-1FTG256C",
	}, q)
}

func TestCommitDuringBlurGrace(t *testing.T) {
	f := &recordingFetch{}
	e := NewEngine(f.fetch, testConfig())
	defer e.Close()
	e.Focus()

	// A pointer selection lands between focus loss and the hide: Blur
	// then an immediate Commit must still produce the navigation query.
	e.Blur()
	q := e.Commit("LM317T")
	assert.Equal(t, "LM317T", q.Value)
}

func TestSubmitEnforcesMinimumLength(t *testing.T) {
	f := &recordingFetch{}
	e := NewEngine(f.fetch, Config{Window: 30 * time.Millisecond, Grace: 20 * time.Millisecond, Field: types.FieldManufacturer, Match: types.MatchExact})
	defer e.Close()

	_, ok := e.Submit("XC")
	assert.False(t, ok)

	q, ok := e.Submit("Xilinx")
	require.True(t, ok)
	assert.Equal(t, types.Query{Field: types.FieldManufacturer, Match: types.MatchExact, Value: "Xilinx"}, q)
}
