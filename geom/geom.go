// Package geom provides the geometry model used by the GeoJSON codec.
//
// The model is deliberately small: seven concrete geometry types mirroring
// the GeoJSON geometry kinds, and an axis-aligned Envelope. Coordinates are
// planar X/Y; altitude and additional position members are not modeled.
package geom

// Type identifies a concrete geometry kind.
type Type string

const (
	// TypePoint identifies a single position.
	TypePoint Type = "Point"
	// TypeMultiPoint identifies a set of positions.
	TypeMultiPoint Type = "MultiPoint"
	// TypeLineString identifies a sequence of positions.
	TypeLineString Type = "LineString"
	// TypeMultiLineString identifies a set of position sequences.
	TypeMultiLineString Type = "MultiLineString"
	// TypePolygon identifies a ring set (exterior first).
	TypePolygon Type = "Polygon"
	// TypeMultiPolygon identifies a set of ring sets.
	TypeMultiPolygon Type = "MultiPolygon"
	// TypeGeometryCollection identifies a heterogeneous geometry set.
	TypeGeometryCollection Type = "GeometryCollection"
)

// Geometry is a spatial value with an enclosing envelope.
type Geometry interface {
	// GeometryType returns the geometry kind.
	GeometryType() Type
	// Envelope returns the enclosing envelope. Empty geometries return
	// an empty envelope.
	Envelope() Envelope
}

// Point is a single position.
type Point struct {
	X, Y float64
}

// GeometryType returns TypePoint.
func (Point) GeometryType() Type { return TypePoint }

// Envelope returns the degenerate envelope containing the point.
func (p Point) Envelope() Envelope {
	e := NewEnvelope()
	e.ExpandToInclude(p.X, p.Y)
	return e
}

// MultiPoint is a set of positions.
type MultiPoint []Point

// GeometryType returns TypeMultiPoint.
func (MultiPoint) GeometryType() Type { return TypeMultiPoint }

// Envelope returns the envelope of all member points.
func (m MultiPoint) Envelope() Envelope {
	e := NewEnvelope()
	for _, p := range m {
		e.ExpandToInclude(p.X, p.Y)
	}
	return e
}

// LineString is a sequence of positions.
type LineString []Point

// GeometryType returns TypeLineString.
func (LineString) GeometryType() Type { return TypeLineString }

// Envelope returns the envelope of all vertices.
func (l LineString) Envelope() Envelope {
	e := NewEnvelope()
	for _, p := range l {
		e.ExpandToInclude(p.X, p.Y)
	}
	return e
}

// MultiLineString is a set of position sequences.
type MultiLineString []LineString

// GeometryType returns TypeMultiLineString.
func (MultiLineString) GeometryType() Type { return TypeMultiLineString }

// Envelope returns the envelope of all member line strings.
func (m MultiLineString) Envelope() Envelope {
	e := NewEnvelope()
	for _, l := range m {
		e.ExpandToIncludeEnvelope(l.Envelope())
	}
	return e
}

// Polygon is a set of closed rings; the first ring is the exterior, any
// further rings are holes.
type Polygon []LineString

// GeometryType returns TypePolygon.
func (Polygon) GeometryType() Type { return TypePolygon }

// Envelope returns the envelope of the exterior ring.
func (p Polygon) Envelope() Envelope {
	if len(p) == 0 {
		return NewEnvelope()
	}
	return p[0].Envelope()
}

// MultiPolygon is a set of polygons.
type MultiPolygon []Polygon

// GeometryType returns TypeMultiPolygon.
func (MultiPolygon) GeometryType() Type { return TypeMultiPolygon }

// Envelope returns the envelope of all member polygons.
func (m MultiPolygon) Envelope() Envelope {
	e := NewEnvelope()
	for _, p := range m {
		e.ExpandToIncludeEnvelope(p.Envelope())
	}
	return e
}

// GeometryCollection is a heterogeneous set of geometries.
type GeometryCollection []Geometry

// GeometryType returns TypeGeometryCollection.
func (GeometryCollection) GeometryType() Type { return TypeGeometryCollection }

// Envelope returns the envelope of all member geometries.
func (c GeometryCollection) Envelope() Envelope {
	e := NewEnvelope()
	for _, g := range c {
		if g == nil {
			continue
		}
		e.ExpandToIncludeEnvelope(g.Envelope())
	}
	return e
}
