// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package suggest implements the debounced incremental-search engine behind
// the search bar dropdown: a cancellable timer plus a generation counter, so
// only the most recent keystroke's fetch is ever applied to visible state.
package suggest

import (
	"context"
	"sync"
	"time"

	"github.com/inventorycapture/partscout/pkg/types"
)

// Defaults mirror the interactive behavior: a debounce window after the last
// keystroke, and a short grace period on focus loss so a pointer selection
// can land before the dropdown goes away.
const (
	DefaultWindow = 300 * time.Millisecond
	DefaultGrace  = 200 * time.Millisecond
)

// FetchFunc queries the API for dropdown candidates.
type FetchFunc func(ctx context.Context, q types.Query) ([]types.Suggestion, error)

// Result is one delivery to the dropdown. A Result with no suggestions and
// no error clears the dropdown. Gen identifies the keystroke generation the
// result belongs to; consumers may ignore it since stale generations are
// already filtered.
type Result struct {
	Gen         uint64
	Query       string
	Suggestions []types.Suggestion
	Err         error
}

// Config tunes the engine. Zero values take the defaults.
type Config struct {
	Window    time.Duration
	Grace     time.Duration
	MinLength int
	Field     types.SearchField
	Match     types.MatchType
}

// Engine debounces keystrokes and delivers at most one fetch result per
// generation on the Results channel.
type Engine struct {
	fetch  FetchFunc
	window time.Duration
	grace  time.Duration
	minLen int
	field  types.SearchField
	match  types.MatchType

	mu        sync.Mutex
	gen       uint64
	timer     *time.Timer
	blurTimer *time.Timer
	focused   bool

	results chan Result
}

// NewEngine builds an engine delivering results on a buffered channel.
func NewEngine(fetch FetchFunc, cfg Config) *Engine {
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.Grace <= 0 {
		cfg.Grace = DefaultGrace
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = types.MinQueryLength
	}
	if cfg.Field == "" {
		cfg.Field = types.FieldMPN
	}
	if cfg.Match == "" {
		cfg.Match = types.MatchBeginsWith
	}
	return &Engine{
		fetch:   fetch,
		window:  cfg.Window,
		grace:   cfg.Grace,
		minLen:  cfg.MinLength,
		field:   cfg.Field,
		match:   cfg.Match,
		results: make(chan Result, 16),
	}
}

// Results delivers fetch outcomes and dropdown-clear events.
func (e *Engine) Results() <-chan Result { return e.results }

// Focus marks the input as holding focus, cancelling any pending hide.
func (e *Engine) Focus() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.blurTimer != nil {
		e.blurTimer.Stop()
		e.blurTimer = nil
	}
	e.focused = true
}

// Blur schedules the dropdown to hide after the grace period. A Commit or
// Focus within the window cancels the hide.
func (e *Engine) Blur() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.blurTimer != nil {
		e.blurTimer.Stop()
	}
	e.blurTimer = time.AfterFunc(e.grace, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.focused = false
		e.invalidateLocked()
		e.emit(Result{Gen: e.gen})
	})
}

// Keystroke registers the current input value. Any pending fetch timer is
// cancelled and restarted; sub-minimum or unfocused input clears results.
func (e *Engine) Keystroke(value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.invalidateLocked()

	if !e.focused || len(value) < e.minLen {
		e.emit(Result{Gen: e.gen, Query: value})
		return
	}

	gen := e.gen
	q := types.Query{Field: e.field, Match: e.match, Value: value}
	e.timer = time.AfterFunc(e.window, func() {
		suggestions, err := e.fetch(context.Background(), q)

		e.mu.Lock()
		defer e.mu.Unlock()
		// A newer keystroke invalidated this fetch while it was in
		// flight; its result must not overwrite fresher state.
		if gen != e.gen {
			return
		}
		e.emit(Result{Gen: gen, Query: value, Suggestions: suggestions, Err: err})
	})
}

// Commit accepts a dropdown selection: the dropdown is cleared and the
// returned query targets the selected part number with an exact match.
func (e *Engine) Commit(partNumber string) types.Query {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.blurTimer != nil {
		e.blurTimer.Stop()
		e.blurTimer = nil
	}
	e.invalidateLocked()
	e.emit(Result{Gen: e.gen})
	return types.Query{Field: types.FieldMPN, Match: types.MatchExact, Value: partNumber}
}

// Submit handles a direct form submission with the current selectors. It is
// a no-op (ok=false) when the value is under the minimum length.
func (e *Engine) Submit(value string) (types.Query, bool) {
	if len(value) < e.minLen {
		return types.Query{}, false
	}
	e.mu.Lock()
	e.invalidateLocked()
	e.emit(Result{Gen: e.gen})
	field, match := e.field, e.match
	e.mu.Unlock()
	return types.Query{Field: field, Match: match, Value: value}, true
}

// SetSelectors updates the field and match type used for subsequent fetches.
func (e *Engine) SetSelectors(field types.SearchField, match types.MatchType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.field, e.match = field, match
}

// Close cancels pending timers. The results channel is left open; no more
// deliveries occur after Close returns.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.invalidateLocked()
	if e.blurTimer != nil {
		e.blurTimer.Stop()
		e.blurTimer = nil
	}
}

// invalidateLocked bumps the generation and stops the debounce timer, so any
// in-flight fetch result is discarded on arrival. Callers hold e.mu.
func (e *Engine) invalidateLocked() {
	e.gen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// emit delivers without blocking; if the consumer has fallen 16 results
// behind, the oldest delivery is dropped to make room.
func (e *Engine) emit(r Result) {
	for {
		select {
		case e.results <- r:
			return
		default:
			select {
			case <-e.results:
			default:
			}
		}
	}
}
