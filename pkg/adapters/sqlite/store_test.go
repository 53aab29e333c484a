package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/folio/pkg/adapters/sqlite"
	"github.com/aretw0/folio/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_Contract(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "folio.db"))
	ports.RunBlobStoreContract(t, store)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.db")
	ctx := context.Background()

	first, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "folioDocuments", []byte(`{"documents":[]}`)))
	require.NoError(t, first.Close())

	second := openStore(t, path)
	got, err := second.Get(ctx, "folioDocuments")
	require.NoError(t, err)
	assert.Equal(t, `{"documents":[]}`, string(got))
}

func TestSQLiteStore_ClosedDB(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "folio.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	err = store.Put(context.Background(), "k", []byte("v"))
	assert.Error(t, err)
}
