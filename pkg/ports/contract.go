package ports

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunBlobStoreContract runs a suite of tests to verify that a BlobStore implementation
// adheres to the defined interface contract.
func RunBlobStoreContract(t *testing.T, store BlobStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405.000000")

	t.Run("Get Missing", func(t *testing.T) {
		_, err := store.Get(ctx, key+"-missing")
		assert.ErrorIs(t, err, ErrBlobNotFound)
	})

	t.Run("Put and Get", func(t *testing.T) {
		value := []byte(`{"documents":[]}`)
		require.NoError(t, store.Put(ctx, key, value))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("Put Replaces Whole Value", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, key, bytes.Repeat([]byte("x"), 64)))
		require.NoError(t, store.Put(ctx, key, []byte("short")))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("short"), got)
	})

	t.Run("Returned Value Is Independent", func(t *testing.T) {
		value := []byte("abc")
		require.NoError(t, store.Put(ctx, key, value))
		value[0] = 'z'

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, key, []byte("gone soon")))
		require.NoError(t, store.Delete(ctx, key))

		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, ErrBlobNotFound, "Get after Delete should return ErrBlobNotFound")
	})

	t.Run("Delete Missing", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, key+"-never-written"))
	})

	t.Run("Concurrent Puts", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, store.Put(ctx, key+"-concurrent", []byte(fmt.Sprintf("v%d", i))))
			}(i)
		}
		wg.Wait()

		got, err := store.Get(ctx, key+"-concurrent")
		require.NoError(t, err)
		assert.Regexp(t, `^v[0-7]$`, string(got))
		_ = store.Delete(ctx, key+"-concurrent")
	})
}
