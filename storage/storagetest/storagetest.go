// Package storagetest keeps the test suite every storage.KV must pass.
package storagetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/hookdom/storage"
)

// TestKV exercises get, set, overwrite and delete on an empty store.
func TestKV(t *testing.T, kv storage.KV) {
	t.Helper()

	_, err := kv.Get("state")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, kv.Set("state", `{"count":1}`))
	require.NoError(t, kv.Set("inputValue", "héllo: world"))

	v, err := kv.Get("state")
	require.NoError(t, err)
	assert.Equal(t, `{"count":1}`, v)

	require.NoError(t, kv.Set("state", `{"count":2}`))
	v, err = kv.Get("state")
	require.NoError(t, err)
	assert.Equal(t, `{"count":2}`, v)

	v, err = kv.Get("inputValue")
	require.NoError(t, err)
	assert.Equal(t, "héllo: world", v)

	require.NoError(t, kv.Set("empty", ""))
	v, err = kv.Get("empty")
	require.NoError(t, err, "an empty value is still present")
	assert.Equal(t, "", v)

	require.NoError(t, kv.Delete("state"))
	_, err = kv.Get("state")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, kv.Delete("never-set"))
}
