package geojson

import (
	"encoding/json"

	"github.com/hupe1980/geojson/attributes"
	"github.com/hupe1980/geojson/jtoken"
)

// attributesCodec is the default AttributesCodec. Member order is
// preserved on both paths; the identifier key is excluded on write and
// merged on read.
type attributesCodec struct {
	newTable func() *attributes.Table
}

// NewAttributesCodec returns the default attributes codec.
func NewAttributesCodec() AttributesCodec {
	return &attributesCodec{newTable: attributes.NewTable}
}

func (ac *attributesCodec) Encode(w *jtoken.Writer, t *attributes.Table) error {
	if t == nil {
		w.Null()
		return w.Err()
	}
	w.BeginObject()
	t.Range(func(key string, value attributes.Value) bool {
		if key == attributes.IDKey {
			// Already surfaced as the top-level identifier member.
			return true
		}
		w.Name(key)
		writeValue(w, value)
		return true
	})
	w.EndObject()
	return w.Err()
}

func writeValue(w *jtoken.Writer, v attributes.Value) {
	switch v.Kind {
	case attributes.KindNull:
		w.Null()
	case attributes.KindInt:
		w.Int(v.I64)
	case attributes.KindFloat:
		w.Float(v.F64)
	case attributes.KindString:
		w.String(v.S)
	case attributes.KindBool:
		w.Bool(v.B)
	case attributes.KindUUID:
		w.String(v.U.String())
	case attributes.KindArray:
		w.BeginArray()
		for _, item := range v.A {
			writeValue(w, item)
		}
		w.EndArray()
	case attributes.KindObject:
		w.BeginObject()
		v.O.Range(func(key string, item attributes.Value) bool {
			w.Name(key)
			writeValue(w, item)
			return true
		})
		w.EndObject()
	default:
		w.Null()
	}
}

func (ac *attributesCodec) Decode(r *jtoken.Reader, owner *Feature) (*attributes.Table, error) {
	tok, err := r.Token()
	if err != nil {
		return nil, formatErr("properties", "unexpected end of stream", err)
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, formatErrf("properties", nil, "expected properties object or null, got %v", tok)
	}

	// Merge contract: decode into the owner's table when it already
	// exists (it may carry an identifier attached by an earlier member).
	table := owner.Attributes
	if table == nil {
		table = ac.newTable()
	}
	if err := ac.decodeInto(r, table); err != nil {
		return nil, err
	}
	return table, nil
}

// decodeInto reads object members into t. The opening brace has already
// been consumed.
func (ac *attributesCodec) decodeInto(r *jtoken.Reader, t *attributes.Table) error {
	for r.More() {
		name, err := r.Name()
		if err != nil {
			return formatErr("properties", "expected member name", err)
		}
		v, err := ac.decodeValue(r)
		if err != nil {
			return err
		}
		t.Set(name, v)
	}
	if err := r.Delim('}'); err != nil {
		return formatErr("properties", "unterminated properties object", err)
	}
	return nil
}

func (ac *attributesCodec) decodeValue(r *jtoken.Reader) (attributes.Value, error) {
	tok, err := r.Token()
	if err != nil {
		return attributes.Value{}, formatErr("properties", "unexpected end of stream", err)
	}

	switch t := tok.(type) {
	case nil:
		return attributes.Null(), nil
	case string:
		return attributes.String(t), nil
	case bool:
		return attributes.Bool(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return attributes.Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return attributes.Value{}, formatErrf("properties", err, "invalid number %q", t.String())
		}
		return attributes.Float(f), nil
	case json.Delim:
		switch t {
		case '[':
			var items []attributes.Value
			for r.More() {
				item, err := ac.decodeValue(r)
				if err != nil {
					return attributes.Value{}, err
				}
				items = append(items, item)
			}
			if err := r.Delim(']'); err != nil {
				return attributes.Value{}, formatErr("properties", "unterminated array", err)
			}
			return attributes.Array(items), nil
		case '{':
			nested := ac.newTable()
			if err := ac.decodeInto(r, nested); err != nil {
				return attributes.Value{}, err
			}
			return attributes.Object(nested), nil
		default:
			return attributes.Value{}, formatErrf("properties", nil, "unexpected %v", t)
		}
	default:
		return attributes.Value{}, formatErrf("properties", nil, "unexpected token %v", tok)
	}
}
