package geojson

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"

	"github.com/hupe1980/geojson/attributes"
)

// IDKind identifies the runtime representation of a feature identifier.
type IDKind uint8

const (
	// IDInvalid represents an invalid identifier.
	IDInvalid IDKind = iota
	// IDInt32 represents a 32-bit integer identifier.
	IDInt32
	// IDInt64 represents a 64-bit integer identifier.
	IDInt64
	// IDUUID represents a UUID identifier.
	IDUUID
	// IDString represents a plain string identifier.
	IDString
)

// FeatureID is the tagged union over the identifier representations the
// codec recognizes. It is constructed fresh on each read from a single
// token and never mutated.
type FeatureID struct {
	kind IDKind
	i64  int64
	u    uuid.UUID
	s    string
}

// Int32ID creates a 32-bit integer identifier.
func Int32ID(v int32) FeatureID { return FeatureID{kind: IDInt32, i64: int64(v)} }

// Int64ID creates a 64-bit integer identifier.
func Int64ID(v int64) FeatureID { return FeatureID{kind: IDInt64, i64: v} }

// UUIDID creates a UUID identifier.
func UUIDID(u uuid.UUID) FeatureID { return FeatureID{kind: IDUUID, u: u} }

// StringID creates a plain string identifier.
func StringID(s string) FeatureID { return FeatureID{kind: IDString, s: s} }

// Kind returns the identifier's representation kind.
func (id FeatureID) Kind() IDKind { return id.kind }

// Int32 returns the value if the identifier is a 32-bit integer.
func (id FeatureID) Int32() (int32, bool) {
	if id.kind != IDInt32 {
		return 0, false
	}
	return int32(id.i64), true
}

// Int64 returns the value if the identifier is a 64-bit integer.
func (id FeatureID) Int64() (int64, bool) {
	if id.kind != IDInt64 {
		return 0, false
	}
	return id.i64, true
}

// UUID returns the value if the identifier is a UUID.
func (id FeatureID) UUID() (uuid.UUID, bool) {
	if id.kind != IDUUID {
		return uuid.UUID{}, false
	}
	return id.u, true
}

// String returns the value if the identifier is a plain string.
func (id FeatureID) String() (string, bool) {
	if id.kind != IDString {
		return "", false
	}
	return id.s, true
}

// Value returns the identifier as an attribute value for merging into the
// attribute table.
func (id FeatureID) Value() attributes.Value {
	switch id.kind {
	case IDInt32, IDInt64:
		return attributes.Int(id.i64)
	case IDUUID:
		return attributes.UUID(id.u)
	case IDString:
		return attributes.String(id.s)
	default:
		return attributes.Null()
	}
}

// ResolveID infers an identifier from the shape of a single scalar token.
//
// The policy is closed and ordered: numeric tokens try a 32-bit integer
// parse, then a 64-bit one; string tokens try a UUID parse, then fall back
// to the raw content; every other token shape is a format error. Callers
// must not attempt additional shapes.
func ResolveID(tok json.Token) (FeatureID, error) {
	switch t := tok.(type) {
	case json.Number:
		if v, err := strconv.ParseInt(t.String(), 10, 32); err == nil {
			return Int32ID(int32(v)), nil
		}
		if v, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return Int64ID(v), nil
		}
		return FeatureID{}, formatErrf("id", nil, "unparseable numeric identifier %q", t.String())
	case string:
		if u, err := uuid.Parse(t); err == nil {
			return UUIDID(u), nil
		}
		return StringID(t), nil
	default:
		return FeatureID{}, formatErrf("id", nil, "identifier must be a number or string, got %v", tok)
	}
}
