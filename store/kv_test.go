// ABOUTME: Tests for the local KV store implementations
// ABOUTME: Exercises both the badger-backed store and the in-memory fake
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	kv := NewMemoryKV()

	_, err := kv.Get(KeyAuthState)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Put(KeyAuthState, []byte(`{"token":"abc"}`)))
	v, err := kv.Get(KeyAuthState)
	require.NoError(t, err)
	assert.Equal(t, `{"token":"abc"}`, string(v))

	require.NoError(t, kv.Delete(KeyAuthState))
	_, err = kv.Get(KeyAuthState)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryKVCopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	buf := []byte("original")
	require.NoError(t, kv.Put("k", buf))
	buf[0] = 'X'

	v, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(v))
}

func TestBadgerKVRoundTrip(t *testing.T) {
	dir := t.TempDir()

	kv, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Put(KeyFilterPresets, []byte(`[]`)))
	v, err := kv.Get(KeyFilterPresets)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(v))

	_, err = kv.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Close())

	// Reopen to confirm durability across a simulated restart.
	kv2, err := Open(dir)
	require.NoError(t, err)
	defer func() { _ = kv2.Close() }()

	v, err = kv2.Get(KeyFilterPresets)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(v))
}
