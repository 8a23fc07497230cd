package geojson

import (
	"github.com/hupe1980/geojson/attributes"
	"github.com/hupe1980/geojson/geom"
)

// Feature pairs an optional geometry with optional free-form attributes,
// an optional identifier and an optional bounding box.
//
// The identifier is never held in a dedicated field: when present it lives
// in the attribute table under attributes.IDKey and is surfaced as a
// top-level member only on the wire.
type Feature struct {
	// Geometry is the feature's spatial value, if any.
	Geometry geom.Geometry

	// Attributes is the feature's attribute table, if any.
	Attributes *attributes.Table

	// BBox is the explicit bounding box, if any. It is independent of
	// the attributes and is never derived implicitly on the feature
	// itself; derivation from the geometry envelope happens at encode
	// time only.
	BBox *geom.Envelope
}

// NewFeature creates an empty feature. It is the default feature factory.
func NewFeature() *Feature {
	return &Feature{}
}

// ID returns the identifier value from the attribute table, if present.
func (f *Feature) ID() (attributes.Value, bool) {
	return f.Attributes.ID()
}

// SetID stores the identifier in the attribute table, allocating the table
// if the feature has none.
func (f *Feature) SetID(v attributes.Value) {
	if f.Attributes == nil {
		f.Attributes = attributes.NewTable()
	}
	f.Attributes.SetID(v)
}

// FeatureCollection is an ordered set of features with an optional
// collection-level bounding box.
type FeatureCollection struct {
	Features []*Feature
	BBox     *geom.Envelope
}

// Envelope returns the union of the member features' effective envelopes:
// each feature contributes its explicit bounding box when set, else its
// geometry envelope.
func (fc *FeatureCollection) Envelope() geom.Envelope {
	e := geom.NewEnvelope()
	if fc == nil {
		return e
	}
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		if f.BBox != nil {
			e.ExpandToIncludeEnvelope(*f.BBox)
			continue
		}
		if f.Geometry != nil {
			e.ExpandToIncludeEnvelope(f.Geometry.Envelope())
		}
	}
	return e
}
