// Copyright Inventory Capture Inc., 2026. All rights reserved.

package subs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	parts          []string
	subscribeErr   error
	unsubscribeErr error
	subscribed     []string
	unsubscribed   []string
}

func (f *fakeAPI) Subscriptions(context.Context) ([]string, error) {
	return f.parts, nil
}

func (f *fakeAPI) Subscribe(_ context.Context, pn string) error {
	if f.subscribeErr != nil {
		return f.subscribeErr
	}
	f.subscribed = append(f.subscribed, pn)
	return nil
}

func (f *fakeAPI) Unsubscribe(_ context.Context, pn string) error {
	if f.unsubscribeErr != nil {
		return f.unsubscribeErr
	}
	f.unsubscribed = append(f.unsubscribed, pn)
	return nil
}

func TestRefreshPopulatesSet(t *testing.T) {
	api := &fakeAPI{parts: []string{"XC7A100T", "LM317T"}}
	set := NewSet(api)
	require.NoError(t, set.Refresh(context.Background()))

	assert.Equal(t, []string{"XC7A100T", "LM317T"}, set.Parts())
	assert.True(t, set.Contains("LM317T"))
	assert.False(t, set.Contains("NE555"))
}

func TestSubscribeOptimistic(t *testing.T) {
	api := &fakeAPI{}
	set := NewSet(api)

	require.NoError(t, set.Subscribe(context.Background(), "NE555"))
	assert.True(t, set.Contains("NE555"))
	assert.Equal(t, []string{"NE555"}, api.subscribed)

	// Subscribing again is a no-op.
	require.NoError(t, set.Subscribe(context.Background(), "NE555"))
	assert.Equal(t, []string{"NE555"}, api.subscribed)
}

func TestSubscribeRollsBackOnFailure(t *testing.T) {
	api := &fakeAPI{subscribeErr: errors.New("server down")}
	set := NewSet(api)

	err := set.Subscribe(context.Background(), "NE555")
	assert.Error(t, err)
	assert.False(t, set.Contains("NE555"))
	assert.Empty(t, set.Parts())
}

func TestUnsubscribeRollsBackOnFailure(t *testing.T) {
	api := &fakeAPI{parts: []string{"XC7A100T", "LM317T"}}
	set := NewSet(api)
	require.NoError(t, set.Refresh(context.Background()))

	api.unsubscribeErr = errors.New("server down")
	err := set.Unsubscribe(context.Background(), "XC7A100T")
	assert.Error(t, err)
	// The part is restored after the failed call.
	assert.True(t, set.Contains("XC7A100T"))
	assert.Len(t, set.Parts(), 2)
}

func TestUnsubscribeRemoves(t *testing.T) {
	api := &fakeAPI{parts: []string{"A", "B", "C"}}
	set := NewSet(api)
	require.NoError(t, set.Refresh(context.Background()))

	require.NoError(t, set.Unsubscribe(context.Background(), "B"))
	assert.Equal(t, []string{"A", "C"}, set.Parts())
	assert.True(t, set.Contains("C"))
	assert.Equal(t, []string{"B"}, api.unsubscribed)
}
