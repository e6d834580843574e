package localstore

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slot struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestBadger_InMemory(t *testing.T) {
	store, err := OpenInMemory()
	require.NoError(t, err)
	defer store.Close()

	var got slot
	found, err := store.Get("qanyare-cart", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set("qanyare-cart", slot{Name: "Sambuus", Count: 2}))
	found, err = store.Get("qanyare-cart", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, slot{Name: "Sambuus", Count: 2}, got)

	require.NoError(t, store.Delete("qanyare-cart"))
	require.NoError(t, store.Delete("qanyare-cart"))
	found, err = store.Get("qanyare-cart", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBadger_CorruptSlot(t *testing.T) {
	store, err := OpenInMemory()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("qanyare-user"), []byte("{not json"))
	}))
	var got slot
	found, err := store.Get("qanyare-user", &got)
	assert.True(t, found)
	assert.Error(t, err)
}

func TestBadger_PersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("qanyare-admin", true))
	require.NoError(t, store.Close())

	store, err = Open(dir)
	require.NoError(t, err)
	defer store.Close()

	var admin bool
	found, err := store.Get("qanyare-admin", &admin)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, admin)
}

func TestOpen_RequiresDir(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
