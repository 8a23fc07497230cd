package blobstore

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingStore wraps a Store and counts Open calls.
type countingStore struct {
	Store
	opens atomic.Int64
}

func (s *countingStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	s.opens.Add(1)
	return s.Store.Open(ctx, name)
}

func TestCachingStoreFillsCache(t *testing.T) {
	ctx := context.Background()
	remote := &countingStore{Store: NewMemoryStore()}
	cache := NewMemoryStore()
	s := NewCachingStore(remote, cache)

	require.NoError(t, remote.Put(ctx, "doc", []byte("content")))

	for i := 0; i < 3; i++ {
		rc, err := s.Open(ctx, "doc")
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		require.Equal(t, "content", string(data))
	}

	// Only the first read misses.
	require.Equal(t, int64(1), remote.opens.Load())

	rc, err := cache.Open(ctx, "doc")
	require.NoError(t, err)
	require.NoError(t, rc.Close())
}

func TestCachingStoreConcurrentMisses(t *testing.T) {
	ctx := context.Background()
	remote := &countingStore{Store: NewMemoryStore()}
	s := NewCachingStore(remote, NewMemoryStore())

	require.NoError(t, remote.Put(ctx, "doc", []byte("content")))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rc, err := s.Open(ctx, "doc")
			if err != nil {
				t.Error(err)
				return
			}
			_, _ = io.ReadAll(rc)
			_ = rc.Close()
		}()
	}
	wg.Wait()

	// Concurrent misses share fetches; a settled cache stops them
	// entirely.
	before := remote.opens.Load()
	rc, err := s.Open(ctx, "doc")
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, before, remote.opens.Load())
}

func TestCachingStoreWriteInvalidates(t *testing.T) {
	ctx := context.Background()
	remote := NewMemoryStore()
	cache := NewMemoryStore()
	s := NewCachingStore(remote, cache)

	require.NoError(t, s.Put(ctx, "doc", []byte("old")))

	rc, err := s.Open(ctx, "doc")
	require.NoError(t, err)
	_, _ = io.ReadAll(rc)
	require.NoError(t, rc.Close())

	require.NoError(t, s.Put(ctx, "doc", []byte("new")))

	rc, err = s.Open(ctx, "doc")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "new", string(data))
}

func TestCachingStoreDeleteBoth(t *testing.T) {
	ctx := context.Background()
	remote := NewMemoryStore()
	cache := NewMemoryStore()
	s := NewCachingStore(remote, cache)

	require.NoError(t, s.Put(ctx, "doc", []byte("content")))
	rc, err := s.Open(ctx, "doc")
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	require.NoError(t, s.Delete(ctx, "doc"))

	_, err = s.Open(ctx, "doc")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = cache.Open(ctx, "doc")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = remote.Open(ctx, "doc")
	require.ErrorIs(t, err, ErrNotFound)
}
