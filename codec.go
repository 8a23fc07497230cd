package geojson

import (
	"encoding/json"
	"io"

	"github.com/hupe1980/geojson/attributes"
	"github.com/hupe1980/geojson/geom"
	"github.com/hupe1980/geojson/jtoken"
)

// GeometryCodec encodes and decodes geometry sub-documents and the bbox
// sub-format. Implementations must be safe for concurrent use.
type GeometryCodec interface {
	// Encode writes g as a GeoJSON geometry object.
	Encode(w *jtoken.Writer, g geom.Geometry) error
	// Decode reads a geometry object or a null token.
	Decode(r *jtoken.Reader) (geom.Geometry, error)
	// EncodeBBox writes e as a [minX, minY, maxX, maxY] array.
	EncodeBBox(w *jtoken.Writer, e *geom.Envelope) error
	// DecodeBBox reads a bbox array or a null token.
	DecodeBBox(r *jtoken.Reader) (*geom.Envelope, error)
}

// AttributesCodec encodes and decodes the properties sub-document.
// Implementations must be safe for concurrent use.
type AttributesCodec interface {
	// Encode writes t as a JSON object. The identifier key
	// (attributes.IDKey) must be excluded: the feature codec has
	// already surfaced it as a top-level member.
	Encode(w *jtoken.Writer, t *attributes.Table) error
	// Decode reads a properties object or a null token. The in-progress
	// owner feature is supplied so the codec can merge into a table that
	// already carries an identifier; when the owner has a table, entries
	// are decoded into it.
	Decode(r *jtoken.Reader, owner *Feature) (*attributes.Table, error)
}

// Codec is the streaming feature codec. It holds only configuration and
// stateless collaborator references, so a single instance is safe for
// concurrent use as long as each call owns its token source or sink.
type Codec struct {
	opts options
}

// New creates a Codec.
func New(opts ...Option) *Codec {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.geometryCodec == nil {
		o.geometryCodec = NewGeometryCodec()
	}
	if o.attributesCodec == nil {
		o.attributesCodec = &attributesCodec{newTable: o.newTable}
	}
	return &Codec{opts: o}
}

// EncodeFeature writes f to w as a single GeoJSON object. A nil feature is
// written as null.
func (c *Codec) EncodeFeature(w io.Writer, f *Feature) error {
	tw := jtoken.NewWriter(w)
	if err := c.encodeFeature(tw, f); err != nil {
		return err
	}
	return tw.Flush()
}

// DecodeFeature reads a single feature from r. A bare null token yields a
// nil feature and no error.
func (c *Codec) DecodeFeature(r io.Reader) (*Feature, error) {
	return c.decodeFeature(jtoken.NewReader(r))
}

func (c *Codec) encodeFeature(w *jtoken.Writer, f *Feature) error {
	if f == nil {
		w.Null()
		return w.Err()
	}

	w.BeginObject()
	w.Name("type")
	w.String("Feature")

	// The typed identifier is marshaled and spliced as-is: integers stay
	// bare numbers, UUIDs and strings stay quoted, so decoding resolves
	// the same identifier type back.
	if id, ok := f.Attributes.ID(); ok {
		b, err := json.Marshal(id.Interface())
		if err != nil {
			return formatErrf(c.opts.idPropertyName, err, "unencodable identifier")
		}
		w.Name(c.opts.idPropertyName)
		w.Raw(b)
	}

	// bbox: the explicit box when supplied, else the geometry envelope.
	// Only when both are absent does the null-emission option decide
	// between omission and null. The derivation is never written back
	// onto the feature.
	if env := c.effectiveBBox(f); env != nil {
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

	if f.Geometry != nil {
		w.Name("geometry")
		if err := c.opts.geometryCodec.Encode(w, f.Geometry); err != nil {
			return err
		}
	} else if !c.opts.ignoreNullValues {
		w.Name("geometry")
		w.Null()
	}

	if f.Attributes != nil {
		w.Name("properties")
		if err := c.opts.attributesCodec.Encode(w, f.Attributes); err != nil {
			return err
		}
	} else if !c.opts.ignoreNullValues {
		w.Name("properties")
		w.Null()
	}

	w.EndObject()
	return w.Err()
}

// effectiveBBox resolves the bounding box to write: the explicit one when
// set, else the geometry envelope, else nil.
func (c *Codec) effectiveBBox(f *Feature) *geom.Envelope {
	if f.BBox != nil {
		return f.BBox
	}
	if f.Geometry != nil {
		if e := f.Geometry.Envelope(); !e.IsEmpty() {
			return &e
		}
	}
	return nil
}

func (c *Codec) decodeFeature(r *jtoken.Reader) (*Feature, error) {
	tok, err := r.Token()
	if err != nil {
		return nil, formatErr("", "unexpected end of stream", err)
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, formatErrf("", nil, "expected feature object or null, got %v", tok)
	}

	f := c.opts.newFeature()

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
			if s, ok := tok.(string); !ok || s != "Feature" {
				return nil, formatErrf("type", nil, "expected %q, got %v", "Feature", tok)
			}

		case c.opts.idPropertyName:
			tok, err := r.Token()
			if err != nil {
				return nil, formatErr(name, "unexpected end of stream", err)
			}
			id, err := ResolveID(tok)
			if err != nil {
				return nil, err
			}
			if f.Attributes == nil {
				f.Attributes = c.opts.newTable()
			}
			f.Attributes.SetID(id.Value())

		case "bbox":
			env, err := c.opts.geometryCodec.DecodeBBox(r)
			if err != nil {
				return nil, err
			}
			f.BBox = env

		case "geometry":
			g, err := c.opts.geometryCodec.Decode(r)
			if err != nil {
				return nil, err
			}
			f.Geometry = g

		case "properties":
			t, err := c.opts.attributesCodec.Decode(r, f)
			if err != nil {
				return nil, err
			}
			if f.Attributes == nil {
				f.Attributes = t
			}

		default:
			c.opts.logger.LogSkippedMember(name)
			if err := r.Skip(); err != nil {
				return nil, formatErr(name, "unskippable member value", err)
			}
		}
	}

	if err := r.Delim('}'); err != nil {
		return nil, formatErr("", "unterminated feature object", err)
	}
	return f, nil
}
