package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/folio/pkg/adapters/memory"
	"github.com/aretw0/folio/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunBlobStoreContract(t, memory.NewStore())
}

func TestMemoryStore_Quota(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.WithQuota(10))

	require.NoError(t, store.Put(ctx, "k", []byte("12345")))
	require.NoError(t, store.Put(ctx, "k", []byte("1234567890")), "replacing counts only the new size")
	assert.Equal(t, 10, store.Size())

	err := store.Put(ctx, "k", []byte("12345678901"))
	assert.ErrorIs(t, err, memory.ErrQuotaExceeded)

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("1234567890"), got, "failed put must keep previous value")

	assert.ErrorIs(t, store.Put(ctx, "other", []byte("x")), memory.ErrQuotaExceeded)

	require.NoError(t, store.Delete(ctx, "k"))
	assert.Equal(t, 0, store.Size())
	assert.NoError(t, store.Put(ctx, "other", []byte("x")))
}
