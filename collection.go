package geojson

import (
	"encoding/json"
	"io"

	"github.com/hupe1980/geojson/attributes"
	"github.com/hupe1980/geojson/geom"
	"github.com/hupe1980/geojson/jtoken"
)

// EncodeCollection writes fc to w as a GeoJSON FeatureCollection object.
// A nil collection is written as null.
func (c *Codec) EncodeCollection(w io.Writer, fc *FeatureCollection) error {
	tw := jtoken.NewWriter(w)
	if err := c.encodeCollection(tw, fc); err != nil {
		return err
	}
	return tw.Flush()
}

// DecodeCollection reads a FeatureCollection from r. A bare null token
// yields a nil collection and no error.
func (c *Codec) DecodeCollection(r io.Reader) (*FeatureCollection, error) {
	return c.decodeCollection(jtoken.NewReader(r))
}

func (c *Codec) encodeCollection(w *jtoken.Writer, fc *FeatureCollection) error {
	if fc == nil {
		w.Null()
		return w.Err()
	}

	w.BeginObject()
	w.Name("type")
	w.String("FeatureCollection")

	// Same bbox policy as single features: the explicit box when
	// supplied, else the member union; omission vs null only when both
	// are absent.
	env := fc.BBox
	if env == nil {
		if e := fc.Envelope(); !e.IsEmpty() {
			env = &e
		}
	}
	if env != nil {
		w.Name("bbox")
		if err := c.opts.geometryCodec.EncodeBBox(w, env); err != nil {
			return err
		}
	} else if !c.opts.ignoreNullValues {
		w.Name("bbox")
		if err := c.opts.geometryCodec.EncodeBBox(w, nil); err != nil {
			return err
		}
	}

	w.Name("features")
	w.BeginArray()
	for _, f := range fc.Features {
		if err := c.encodeFeature(w, f); err != nil {
			return err
		}
	}
	w.EndArray()

	w.EndObject()
	return w.Err()
}

func (c *Codec) decodeCollection(r *jtoken.Reader) (*FeatureCollection, error) {
	tok, err := r.Token()
	if err != nil {
		return nil, formatErr("", "unexpected end of stream", err)
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, formatErrf("", nil, "expected feature collection object or null, got %v", tok)
	}

	fc := &FeatureCollection{}

	for r.More() {
		name, err := r.Name()
		if err != nil {
			return nil, formatErr("", "expected member name", err)
		}

		switch name {
		case "type":
			tok, err := r.Token()
			if err != nil {
				return nil, formatErr("type", "unexpected end of stream", err)
			}
			if s, ok := tok.(string); !ok || s != "FeatureCollection" {
				return nil, formatErrf("type", nil, "expected %q, got %v", "FeatureCollection", tok)
			}

		case "bbox":
			env, err := c.opts.geometryCodec.DecodeBBox(r)
			if err != nil {
				return nil, err
			}
			fc.BBox = env

		case "features":
			features, err := c.decodeFeatureList(r)
			if err != nil {
				return nil, err
			}
			fc.Features = features

		default:
			c.opts.logger.LogSkippedMember(name)
			if err := r.Skip(); err != nil {
				return nil, formatErr(name, "unskippable member value", err)
			}
		}
	}

	if err := r.Delim('}'); err != nil {
		return nil, formatErr("", "unterminated feature collection object", err)
	}
	return fc, nil
}

func (c *Codec) decodeFeatureList(r *jtoken.Reader) ([]*Feature, error) {
	tok, err := r.Token()
	if err != nil {
		return nil, formatErr("features", "unexpected end of stream", err)
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, formatErrf("features", nil, "expected features array or null, got %v", tok)
	}

	var features []*Feature
	for r.More() {
		f, err := c.decodeFeature(r)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	if err := r.Delim(']'); err != nil {
		return nil, formatErr("features", "unterminated features array", err)
	}
	return features, nil
}

// IndexCollection builds an attribute index over the collection's features,
// keyed by feature position. Features without an attribute table contribute
// nothing.
func IndexCollection(fc *FeatureCollection) *attributes.Index {
	ix := attributes.NewIndex()
	if fc == nil {
		return ix
	}
	for pos, f := range fc.Features {
		if f == nil || f.Attributes == nil {
			continue
		}
		ix.Set(uint32(pos), f.Attributes)
	}
	return ix
}

// CollectionEnvelope is a convenience wrapper returning the effective
// envelope of a collection: its explicit bbox when set, else the union of
// its members.
func CollectionEnvelope(fc *FeatureCollection) geom.Envelope {
	if fc == nil {
		return geom.NewEnvelope()
	}
	if fc.BBox != nil {
		return *fc.BBox
	}
	return fc.Envelope()
}
