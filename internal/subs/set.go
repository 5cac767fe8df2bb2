// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package subs maintains the current identity's part-number subscriptions.
// Mutations apply optimistically and roll back when the API rejects them.
package subs

import (
	"context"
	"fmt"
	"sync"
)

// API is the subset of the aggregation client the set needs.
type API interface {
	Subscriptions(ctx context.Context) ([]string, error)
	Subscribe(ctx context.Context, partNumber string) error
	Unsubscribe(ctx context.Context, partNumber string) error
}

// Set holds the subscribed part numbers in fetch order.
type Set struct {
	api API

	mu    sync.Mutex
	parts []string
	index map[string]int
}

// NewSet returns an empty set backed by api.
func NewSet(api API) *Set {
	return &Set{api: api, index: make(map[string]int)}
}

// Refresh replaces the set with the server's view.
func (s *Set) Refresh(ctx context.Context) error {
	parts, err := s.api.Subscriptions(ctx)
	if err != nil {
		return fmt.Errorf("fetching subscriptions: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parts = parts
	s.index = make(map[string]int, len(parts))
	for i, p := range parts {
		s.index[p] = i
	}
	return nil
}

// Parts returns the subscribed part numbers in order.
func (s *Set) Parts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.parts...)
}

// Contains reports whether partNumber is subscribed.
func (s *Set) Contains(partNumber string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.index[partNumber]
	return ok
}

// Subscribe adds partNumber optimistically, rolling back if the API call
// fails. Subscribing to a present part is a no-op.
func (s *Set) Subscribe(ctx context.Context, partNumber string) error {
	s.mu.Lock()
	if _, ok := s.index[partNumber]; ok {
		s.mu.Unlock()
		return nil
	}
	s.index[partNumber] = len(s.parts)
	s.parts = append(s.parts, partNumber)
	s.mu.Unlock()

	if err := s.api.Subscribe(ctx, partNumber); err != nil {
		s.remove(partNumber)
		return fmt.Errorf("subscribing to %s: %w", partNumber, err)
	}
	return nil
}

// Unsubscribe removes partNumber optimistically, restoring it if the API
// call fails. Unsubscribing an absent part is a no-op.
func (s *Set) Unsubscribe(ctx context.Context, partNumber string) error {
	s.mu.Lock()
	if _, ok := s.index[partNumber]; !ok {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()
	s.remove(partNumber)

	if err := s.api.Unsubscribe(ctx, partNumber); err != nil {
		s.mu.Lock()
		if _, ok := s.index[partNumber]; !ok {
			s.index[partNumber] = len(s.parts)
			s.parts = append(s.parts, partNumber)
		}
		s.mu.Unlock()
		return fmt.Errorf("unsubscribing from %s: %w", partNumber, err)
	}
	return nil
}

func (s *Set) remove(partNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[partNumber]
	if !ok {
		return
	}
	s.parts = append(s.parts[:i], s.parts[i+1:]...)
	delete(s.index, partNumber)
	for j := i; j < len(s.parts); j++ {
		s.index[s.parts[j]] = j
	}
}
