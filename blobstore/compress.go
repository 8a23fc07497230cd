package blobstore

import (
	"context"
	"io"
	"path"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// OpenDocument opens a document and transparently decompresses it based on
// its extension: ".gz", ".zst" and ".lz4" are recognized, anything else is
// passed through.
func OpenDocument(ctx context.Context, s Store, name string) (io.ReadCloser, error) {
	rc, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	switch path.Ext(name) {
	case ".gz":
		zr, err := gzip.NewReader(rc)
		if err != nil {
			_ = rc.Close()
			return nil, err
		}
		return &chainedReadCloser{Reader: zr, closers: []io.Closer{zr, rc}}, nil
	case ".zst":
		zr, err := zstd.NewReader(rc)
		if err != nil {
			_ = rc.Close()
			return nil, err
		}
		return &chainedReadCloser{Reader: zr, closers: []io.Closer{closerFunc(func() error {
			zr.Close()
			return nil
		}), rc}}, nil
	case ".lz4":
		return &chainedReadCloser{Reader: lz4.NewReader(rc), closers: []io.Closer{rc}}, nil
	default:
		return rc, nil
	}
}

// CreateDocument creates a document and transparently compresses it based
// on its extension, mirroring OpenDocument.
func CreateDocument(ctx context.Context, s Store, name string) (io.WriteCloser, error) {
	wc, err := s.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	switch path.Ext(name) {
	case ".gz":
		zw := gzip.NewWriter(wc)
		return &chainedWriteCloser{Writer: zw, closers: []io.Closer{zw, wc}}, nil
	case ".zst":
		zw, err := zstd.NewWriter(wc)
		if err != nil {
			_ = wc.Close()
			return nil, err
		}
		return &chainedWriteCloser{Writer: zw, closers: []io.Closer{zw, wc}}, nil
	case ".lz4":
		zw := lz4.NewWriter(wc)
		return &chainedWriteCloser{Writer: zw, closers: []io.Closer{zw, wc}}, nil
	default:
		return wc, nil
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

type chainedReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *chainedReadCloser) Close() error {
	var first error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type chainedWriteCloser struct {
	io.Writer
	closers []io.Closer
}

// Close closes the compressor before the underlying writer so trailing
// frames are flushed.
func (c *chainedWriteCloser) Close() error {
	var first error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
