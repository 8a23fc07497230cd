package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// storeTests runs the Store contract against an implementation.
func storeTests(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("open missing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Open(ctx, "absent")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put then open", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "doc", []byte("content")))

		rc, err := s.Open(ctx, "doc")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.Equal(t, "content", string(data))
	})

	t.Run("create streams then becomes visible", func(t *testing.T) {
		s := newStore(t)
		w, err := s.Create(ctx, "doc")
		require.NoError(t, err)
		_, err = w.Write([]byte("part one "))
		require.NoError(t, err)
		_, err = w.Write([]byte("part two"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		rc, err := s.Open(ctx, "doc")
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.Equal(t, "part one part two", string(data))
	})

	t.Run("put overwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "doc", []byte("old")))
		require.NoError(t, s.Put(ctx, "doc", []byte("new")))

		rc, err := s.Open(ctx, "doc")
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.Equal(t, "new", string(data))
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "doc", []byte("content")))
		require.NoError(t, s.Delete(ctx, "doc"))

		_, err := s.Open(ctx, "doc")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete missing is not an error", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Delete(ctx, "absent"))
	})

	t.Run("list with prefix", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "a/one", []byte("1")))
		require.NoError(t, s.Put(ctx, "a/two", []byte("2")))
		require.NoError(t, s.Put(ctx, "b/three", []byte("3")))

		names, err := s.List(ctx, "a/")
		require.NoError(t, err)
		require.Equal(t, []string{"a/one", "a/two"}, names)

		all, err := s.List(ctx, "")
		require.NoError(t, err)
		require.Equal(t, []string{"a/one", "a/two", "b/three"}, all)
	})
}

func TestMemoryStore(t *testing.T) {
	storeTests(t, func(t *testing.T) Store { return NewMemoryStore() })
}

func TestLocalStore(t *testing.T) {
	storeTests(t, func(t *testing.T) Store { return NewLocalStore(t.TempDir()) })
}

func TestCachingStore(t *testing.T) {
	storeTests(t, func(t *testing.T) Store {
		return NewCachingStore(NewMemoryStore(), NewMemoryStore())
	})
}
