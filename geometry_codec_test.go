package geojson

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geojson/geom"
	"github.com/hupe1980/geojson/jtoken"
)

func encodeGeometry(t *testing.T, g geom.Geometry) string {
	t.Helper()
	var buf bytes.Buffer
	w := jtoken.NewWriter(&buf)
	require.NoError(t, NewGeometryCodec().Encode(w, g))
	require.NoError(t, w.Flush())
	return buf.String()
}

func decodeGeometry(t *testing.T, doc string) (geom.Geometry, error) {
	t.Helper()
	return NewGeometryCodec().Decode(jtoken.NewReader(strings.NewReader(doc)))
}

func TestGeometryRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want geom.Geometry
	}{
		{
			name: "point",
			doc:  `{"type":"Point","coordinates":[125.6,10.1]}`,
			want: geom.Point{X: 125.6, Y: 10.1},
		},
		{
			name: "multi point",
			doc:  `{"type":"MultiPoint","coordinates":[[1,2],[3,4]]}`,
			want: geom.MultiPoint{{X: 1, Y: 2}, {X: 3, Y: 4}},
		},
		{
			name: "line string",
			doc:  `{"type":"LineString","coordinates":[[1,2],[3,4],[5,6]]}`,
			want: geom.LineString{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}},
		},
		{
			name: "multi line string",
			doc:  `{"type":"MultiLineString","coordinates":[[[1,2],[3,4]],[[5,6],[7,8]]]}`,
			want: geom.MultiLineString{
				{{X: 1, Y: 2}, {X: 3, Y: 4}},
				{{X: 5, Y: 6}, {X: 7, Y: 8}},
			},
		},
		{
			name: "polygon with hole",
			doc:  `{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10],[0,10],[0,0]],[[2,2],[4,2],[4,4],[2,2]]]}`,
			want: geom.Polygon{
				{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
				{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 2}},
			},
		},
		{
			name: "multi polygon",
			doc:  `{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]],[[[5,5],[6,5],[6,6],[5,5]]]]}`,
			want: geom.MultiPolygon{
				{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}},
				{{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 5}}},
			},
		},
		{
			name: "geometry collection",
			doc:  `{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[1,2]},{"type":"LineString","coordinates":[[3,4],[5,6]]}]}`,
			want: geom.GeometryCollection{
				geom.Point{X: 1, Y: 2},
				geom.LineString{{X: 3, Y: 4}, {X: 5, Y: 6}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := decodeGeometry(t, tt.doc)
			require.NoError(t, err)
			require.Equal(t, tt.want, g)
			require.Equal(t, tt.doc, encodeGeometry(t, g))
		})
	}
}

func TestGeometryDecode(t *testing.T) {
	t.Run("null yields nil geometry", func(t *testing.T) {
		g, err := decodeGeometry(t, `null`)
		require.NoError(t, err)
		require.Nil(t, g)
	})

	t.Run("coordinates before type", func(t *testing.T) {
		g, err := decodeGeometry(t, `{"coordinates":[125.6,10.1],"type":"Point"}`)
		require.NoError(t, err)
		require.Equal(t, geom.Point{X: 125.6, Y: 10.1}, g)
	})

	t.Run("altitude is dropped", func(t *testing.T) {
		g, err := decodeGeometry(t, `{"type":"Point","coordinates":[1,2,99]}`)
		require.NoError(t, err)
		require.Equal(t, geom.Point{X: 1, Y: 2}, g)
	})

	t.Run("unknown members skipped", func(t *testing.T) {
		g, err := decodeGeometry(t, `{"type":"Point","crs":{"a":[1,2]},"coordinates":[1,2]}`)
		require.NoError(t, err)
		require.Equal(t, geom.Point{X: 1, Y: 2}, g)
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := decodeGeometry(t, `{"coordinates":[1,2]}`)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := decodeGeometry(t, `{"type":"Circle","coordinates":[1,2]}`)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		_, err := decodeGeometry(t, `{"type":"Point"}`)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("single ordinate position", func(t *testing.T) {
		_, err := decodeGeometry(t, `{"type":"Point","coordinates":[1]}`)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("non-numeric ordinate", func(t *testing.T) {
		_, err := decodeGeometry(t, `{"type":"Point","coordinates":["a","b"]}`)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("scalar token", func(t *testing.T) {
		_, err := decodeGeometry(t, `42`)
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("mismatched nesting", func(t *testing.T) {
		_, err := decodeGeometry(t, `{"type":"LineString","coordinates":[1,2]}`)
		require.ErrorIs(t, err, ErrFormat)
	})
}

func TestGeometryEncodeNil(t *testing.T) {
	require.Equal(t, "null", encodeGeometry(t, nil))
}

func TestBBoxCodec(t *testing.T) {
	gc := NewGeometryCodec()

	encode := func(t *testing.T, e *geom.Envelope) string {
		t.Helper()
		var buf bytes.Buffer
		w := jtoken.NewWriter(&buf)
		require.NoError(t, gc.EncodeBBox(w, e))
		require.NoError(t, w.Flush())
		return buf.String()
	}

	t.Run("encode", func(t *testing.T) {
		env := geom.EnvelopeOf(1, 2, 3, 4)
		require.Equal(t, `[1,2,3,4]`, encode(t, &env))
	})

	t.Run("encode nil", func(t *testing.T) {
		require.Equal(t, `null`, encode(t, nil))
	})

	t.Run("encode empty", func(t *testing.T) {
		empty := geom.NewEnvelope()
		require.Equal(t, `null`, encode(t, &empty))
	})

	t.Run("decode four ordinates", func(t *testing.T) {
		e, err := gc.DecodeBBox(jtoken.NewReader(strings.NewReader(`[1,2,3,4]`)))
		require.NoError(t, err)
		require.Equal(t, geom.EnvelopeOf(1, 2, 3, 4), *e)
	})

	t.Run("decode six ordinates drops altitude range", func(t *testing.T) {
		e, err := gc.DecodeBBox(jtoken.NewReader(strings.NewReader(`[1,2,0,3,4,100]`)))
		require.NoError(t, err)
		require.Equal(t, geom.EnvelopeOf(1, 2, 3, 4), *e)
	})

	t.Run("decode null", func(t *testing.T) {
		e, err := gc.DecodeBBox(jtoken.NewReader(strings.NewReader(`null`)))
		require.NoError(t, err)
		require.Nil(t, e)
	})

	t.Run("decode wrong arity", func(t *testing.T) {
		_, err := gc.DecodeBBox(jtoken.NewReader(strings.NewReader(`[1,2,3]`)))
		require.ErrorIs(t, err, ErrFormat)
	})

	t.Run("decode non-numeric", func(t *testing.T) {
		_, err := gc.DecodeBBox(jtoken.NewReader(strings.NewReader(`[1,"a",3,4]`)))
		require.ErrorIs(t, err, ErrFormat)
	})
}
