package geojson

import (
	"context"

	"github.com/hupe1980/geojson/blobstore"
)

// DecodeDocument reads and decodes a FeatureCollection document from a
// store, decompressing by extension.
func (c *Codec) DecodeDocument(ctx context.Context, s blobstore.Store, name string) (*FeatureCollection, error) {
	rc, err := blobstore.OpenDocument(ctx, s, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	fc, err := c.DecodeCollection(rc)
	if err != nil {
		return nil, err
	}
	c.opts.logger.WithDocument(name).Debug("decoded document", "features", featureCount(fc))
	return fc, nil
}

// EncodeDocument encodes a FeatureCollection into a store document,
// compressing by extension. The document becomes visible once fully
// written.
func (c *Codec) EncodeDocument(ctx context.Context, s blobstore.Store, name string, fc *FeatureCollection) error {
	wc, err := blobstore.CreateDocument(ctx, s, name)
	if err != nil {
		return err
	}
	if err := c.EncodeCollection(wc, fc); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}
	c.opts.logger.WithDocument(name).Debug("encoded document", "features", featureCount(fc))
	return nil
}

func featureCount(fc *FeatureCollection) int {
	if fc == nil {
		return 0
	}
	return len(fc.Features)
}
