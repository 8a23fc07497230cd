package geojson

import (
	"encoding/json"

	"github.com/hupe1980/geojson/geom"
	"github.com/hupe1980/geojson/jtoken"
)

// geometryCodec is the default GeometryCodec for the seven GeoJSON
// geometry kinds. It is stateless.
type geometryCodec struct{}

// NewGeometryCodec returns the default geometry codec.
func NewGeometryCodec() GeometryCodec {
	return geometryCodec{}
}

func (gc geometryCodec) Encode(w *jtoken.Writer, g geom.Geometry) error {
	if g == nil {
		w.Null()
		return w.Err()
	}

	w.BeginObject()
	w.Name("type")
	w.String(string(g.GeometryType()))

	switch t := g.(type) {
	case geom.Point:
		w.Name("coordinates")
		writePosition(w, t)
	case geom.MultiPoint:
		w.Name("coordinates")
		writePositions(w, t)
	case geom.LineString:
		w.Name("coordinates")
		writePositions(w, t)
	case geom.MultiLineString:
		w.Name("coordinates")
		w.BeginArray()
		for _, l := range t {
			writePositions(w, l)
		}
		w.EndArray()
	case geom.Polygon:
		w.Name("coordinates")
		w.BeginArray()
		for _, ring := range t {
			writePositions(w, ring)
		}
		w.EndArray()
	case geom.MultiPolygon:
		w.Name("coordinates")
		w.BeginArray()
		for _, p := range t {
			w.BeginArray()
			for _, ring := range p {
				writePositions(w, ring)
			}
			w.EndArray()
		}
		w.EndArray()
	case geom.GeometryCollection:
		w.Name("geometries")
		w.BeginArray()
		for _, member := range t {
			if err := gc.Encode(w, member); err != nil {
				return err
			}
		}
		w.EndArray()
	default:
		return formatErrf("geometry", nil, "unsupported geometry type %T", g)
	}

	w.EndObject()
	return w.Err()
}

func writePosition(w *jtoken.Writer, p geom.Point) {
	w.BeginArray()
	w.Float(p.X)
	w.Float(p.Y)
	w.EndArray()
}

func writePositions(w *jtoken.Writer, ps []geom.Point) {
	w.BeginArray()
	for _, p := range ps {
		writePosition(w, p)
	}
	w.EndArray()
}

func (gc geometryCodec) Decode(r *jtoken.Reader) (geom.Geometry, error) {
	tok, err := r.Token()
	if err != nil {
		return nil, formatErr("geometry", "unexpected end of stream", err)
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, formatErrf("geometry", nil, "expected geometry object or null, got %v", tok)
	}
	return gc.decodeObject(r)
}

// decodeObject reads the members of a geometry object whose opening brace
// has been consumed. Member order is not fixed: coordinates may precede
// type, so coordinates are first parsed into a shape-agnostic node and
// assembled once the object closes.
func (gc geometryCodec) decodeObject(r *jtoken.Reader) (geom.Geometry, error) {
	var (
		typ        string
		haveType   bool
		coords     coordNode
		haveCoords bool
		members    []geom.Geometry
		haveGeoms  bool
	)

	for r.More() {
		name, err := r.Name()
		if err != nil {
			return nil, formatErr("geometry", "expected member name", err)
		}
		switch name {
		case "type":
			tok, err := r.Token()
			if err != nil {
				return nil, formatErr("geometry", "unexpected end of stream", err)
			}
			s, ok := tok.(string)
			if !ok {
				return nil, formatErrf("geometry", nil, "geometry type must be a string, got %v", tok)
			}
			typ, haveType = s, true

		case "coordinates":
			if err := r.Delim('['); err != nil {
				return nil, formatErr("coordinates", "expected array", err)
			}
			coords, err = readCoordBody(r)
			if err != nil {
				return nil, err
			}
			haveCoords = true

		case "geometries":
			if err := r.Delim('['); err != nil {
				return nil, formatErr("geometries", "expected array", err)
			}
			for r.More() {
				g, err := gc.Decode(r)
				if err != nil {
					return nil, err
				}
				members = append(members, g)
			}
			if err := r.Delim(']'); err != nil {
				return nil, formatErr("geometries", "unterminated array", err)
			}
			haveGeoms = true

		default:
			if err := r.Skip(); err != nil {
				return nil, formatErr(name, "unskippable member value", err)
			}
		}
	}
	if err := r.Delim('}'); err != nil {
		return nil, formatErr("geometry", "unterminated geometry object", err)
	}

	if !haveType {
		return nil, formatErr("geometry", "missing geometry type", nil)
	}

	switch geom.Type(typ) {
	case geom.TypePoint:
		if !haveCoords {
			return nil, formatErr("coordinates", "missing coordinates", nil)
		}
		return toPoint(coords)
	case geom.TypeMultiPoint:
		if !haveCoords {
			return nil, formatErr("coordinates", "missing coordinates", nil)
		}
		ps, err := toPositions(coords)
		return geom.MultiPoint(ps), err
	case geom.TypeLineString:
		if !haveCoords {
			return nil, formatErr("coordinates", "missing coordinates", nil)
		}
		ps, err := toPositions(coords)
		return geom.LineString(ps), err
	case geom.TypeMultiLineString:
		if !haveCoords {
			return nil, formatErr("coordinates", "missing coordinates", nil)
		}
		ls, err := toLineStrings(coords)
		return geom.MultiLineString(ls), err
	case geom.TypePolygon:
		if !haveCoords {
			return nil, formatErr("coordinates", "missing coordinates", nil)
		}
		ls, err := toLineStrings(coords)
		return geom.Polygon(ls), err
	case geom.TypeMultiPolygon:
		if !haveCoords {
			return nil, formatErr("coordinates", "missing coordinates", nil)
		}
		var mp geom.MultiPolygon
		for _, child := range coords.list {
			ls, err := toLineStrings(child)
			if err != nil {
				return nil, err
			}
			mp = append(mp, geom.Polygon(ls))
		}
		if coords.pos != nil {
			return nil, formatErr("coordinates", "malformed MultiPolygon coordinates", nil)
		}
		return mp, nil
	case geom.TypeGeometryCollection:
		if !haveGeoms {
			return nil, formatErr("geometries", "missing geometries", nil)
		}
		return geom.GeometryCollection(members), nil
	default:
		return nil, formatErrf("geometry", nil, "unknown geometry type %q", typ)
	}
}

// coordNode is a shape-agnostic coordinate tree: either a flat position
// (pos) or a list of nested nodes, depending on the geometry kind.
type coordNode struct {
	pos  []float64
	list []coordNode
}

// readCoordBody consumes array elements up to and including the closing
// bracket. The opening bracket has already been consumed.
func readCoordBody(r *jtoken.Reader) (coordNode, error) {
	var n coordNode
	for r.More() {
		tok, err := r.Token()
		if err != nil {
			return n, formatErr("coordinates", "unexpected end of stream", err)
		}
		switch t := tok.(type) {
		case json.Number:
			f, err := t.Float64()
			if err != nil {
				return n, formatErrf("coordinates", err, "invalid ordinate %q", t.String())
			}
			n.pos = append(n.pos, f)
		case json.Delim:
			if t != '[' {
				return n, formatErrf("coordinates", nil, "unexpected %v in coordinates", t)
			}
			child, err := readCoordBody(r)
			if err != nil {
				return n, err
			}
			n.list = append(n.list, child)
		default:
			return n, formatErrf("coordinates", nil, "unexpected token %v in coordinates", tok)
		}
	}
	if err := r.Delim(']'); err != nil {
		return n, formatErr("coordinates", "unterminated coordinates array", err)
	}
	return n, nil
}

// toPoint interprets a node as a single position. Additional ordinates
// beyond X and Y (altitude) are accepted and dropped.
func toPoint(n coordNode) (geom.Point, error) {
	if len(n.pos) < 2 || n.list != nil {
		return geom.Point{}, formatErr("coordinates", "position needs at least two ordinates", nil)
	}
	return geom.Point{X: n.pos[0], Y: n.pos[1]}, nil
}

func toPositions(n coordNode) ([]geom.Point, error) {
	if n.pos != nil {
		return nil, formatErr("coordinates", "expected array of positions", nil)
	}
	ps := make([]geom.Point, 0, len(n.list))
	for _, child := range n.list {
		p, err := toPoint(child)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func toLineStrings(n coordNode) ([]geom.LineString, error) {
	if n.pos != nil {
		return nil, formatErr("coordinates", "expected array of position arrays", nil)
	}
	ls := make([]geom.LineString, 0, len(n.list))
	for _, child := range n.list {
		ps, err := toPositions(child)
		if err != nil {
			return nil, err
		}
		ls = append(ls, geom.LineString(ps))
	}
	return ls, nil
}

func (gc geometryCodec) EncodeBBox(w *jtoken.Writer, e *geom.Envelope) error {
	if e == nil || e.IsEmpty() {
		w.Null()
		return w.Err()
	}
	w.BeginArray()
	w.Float(e.MinX)
	w.Float(e.MinY)
	w.Float(e.MaxX)
	w.Float(e.MaxY)
	w.EndArray()
	return w.Err()
}

func (gc geometryCodec) DecodeBBox(r *jtoken.Reader) (*geom.Envelope, error) {
	tok, err := r.Token()
	if err != nil {
		return nil, formatErr("bbox", "unexpected end of stream", err)
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, formatErrf("bbox", nil, "expected bbox array or null, got %v", tok)
	}

	var ords []float64
	for r.More() {
		tok, err := r.Token()
		if err != nil {
			return nil, formatErr("bbox", "unexpected end of stream", err)
		}
		num, ok := tok.(json.Number)
		if !ok {
			return nil, formatErrf("bbox", nil, "bbox must contain numbers, got %v", tok)
		}
		f, err := num.Float64()
		if err != nil {
			return nil, formatErrf("bbox", err, "invalid bbox ordinate %q", num.String())
		}
		ords = append(ords, f)
	}
	if err := r.Delim(']'); err != nil {
		return nil, formatErr("bbox", "unterminated bbox array", err)
	}

	// Four ordinates for two dimensions, six when an altitude range is
	// present; the altitude range is dropped.
	var e geom.Envelope
	switch len(ords) {
	case 4:
		e = geom.EnvelopeOf(ords[0], ords[1], ords[2], ords[3])
	case 6:
		e = geom.EnvelopeOf(ords[0], ords[1], ords[3], ords[4])
	default:
		return nil, formatErrf("bbox", nil, "bbox needs 4 or 6 ordinates, got %d", len(ords))
	}
	return &e, nil
}
