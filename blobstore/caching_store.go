package blobstore

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/singleflight"
)

// CachingStore fills a local cache store from a remote store on demand.
//
// Reads hit the cache first; on a miss the document is fetched from the
// remote exactly once even under concurrent misses (singleflight) and then
// served from the cache. Writes go through to the remote and invalidate the
// cached copy.
type CachingStore struct {
	remote Store
	cache  Store
	group  singleflight.Group
}

// NewCachingStore creates a CachingStore. cache is typically a LocalStore
// or MemoryStore; remote is the authoritative store.
func NewCachingStore(remote, cache Store) *CachingStore {
	return &CachingStore{remote: remote, cache: cache}
}

// Open opens a document for reading, filling the cache on a miss.
func (s *CachingStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.cache.Open(ctx, name)
	if err == nil {
		return rc, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	// Concurrent misses for the same document share one remote fetch.
	_, err, _ = s.group.Do(name, func() (any, error) {
		remote, err := s.remote.Open(ctx, name)
		if err != nil {
			return nil, err
		}
		defer remote.Close()
		data, err := io.ReadAll(remote)
		if err != nil {
			return nil, err
		}
		return nil, s.cache.Put(ctx, name, data)
	})
	if err != nil {
		return nil, err
	}
	return s.cache.Open(ctx, name)
}

// Create opens a document for streaming writes on the remote. The cached
// copy, if any, is invalidated first.
func (s *CachingStore) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	if err := s.cache.Delete(ctx, name); err != nil {
		return nil, err
	}
	return s.remote.Create(ctx, name)
}

// Put writes a document to the remote and invalidates the cached copy.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.cache.Delete(ctx, name); err != nil {
		return err
	}
	return s.remote.Put(ctx, name, data)
}

// Delete removes a document from both stores.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	if err := s.cache.Delete(ctx, name); err != nil {
		return err
	}
	return s.remote.Delete(ctx, name)
}

// List lists the remote store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.remote.List(ctx, prefix)
}
