package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelope_Empty(t *testing.T) {
	e := NewEnvelope()
	require.True(t, e.IsEmpty())
	require.Equal(t, 0.0, e.Width())
	require.Equal(t, 0.0, e.Height())
	require.False(t, e.Contains(0, 0))
}

func TestEnvelope_Expand(t *testing.T) {
	e := NewEnvelope()
	e.ExpandToInclude(2, 3)
	require.False(t, e.IsEmpty())
	require.Equal(t, EnvelopeOf(2, 3, 2, 3), e)

	e.ExpandToInclude(-1, 10)
	require.Equal(t, EnvelopeOf(-1, 3, 2, 10), e)
	require.Equal(t, 3.0, e.Width())
	require.Equal(t, 7.0, e.Height())
	require.True(t, e.Contains(0, 5))
	require.False(t, e.Contains(0, 11))
}

func TestEnvelope_ExpandToIncludeEnvelope(t *testing.T) {
	e := NewEnvelope()
	e.ExpandToIncludeEnvelope(NewEnvelope()) // empty is a no-op
	require.True(t, e.IsEmpty())

	e.ExpandToIncludeEnvelope(EnvelopeOf(0, 0, 1, 1))
	e.ExpandToIncludeEnvelope(EnvelopeOf(5, -2, 6, 0))
	require.Equal(t, EnvelopeOf(0, -2, 6, 1), e)
}

func TestGeometryEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		typ  Type
		want Envelope
	}{
		{
			name: "point",
			g:    Point{X: 1, Y: 2},
			typ:  TypePoint,
			want: EnvelopeOf(1, 2, 1, 2),
		},
		{
			name: "multipoint",
			g:    MultiPoint{{X: 1, Y: 2}, {X: -3, Y: 4}},
			typ:  TypeMultiPoint,
			want: EnvelopeOf(-3, 2, 1, 4),
		},
		{
			name: "linestring",
			g:    LineString{{X: 0, Y: 0}, {X: 10, Y: 5}},
			typ:  TypeLineString,
			want: EnvelopeOf(0, 0, 10, 5),
		},
		{
			name: "multilinestring",
			g: MultiLineString{
				{{X: 0, Y: 0}, {X: 1, Y: 1}},
				{{X: 5, Y: -1}, {X: 6, Y: 2}},
			},
			typ:  TypeMultiLineString,
			want: EnvelopeOf(0, -1, 6, 2),
		},
		{
			name: "polygon envelope comes from the exterior ring",
			g: Polygon{
				{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
				{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}},
			},
			typ:  TypePolygon,
			want: EnvelopeOf(0, 0, 4, 4),
		},
		{
			name: "multipolygon",
			g: MultiPolygon{
				{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}},
				{{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 10}}},
			},
			typ:  TypeMultiPolygon,
			want: EnvelopeOf(0, 0, 11, 11),
		},
		{
			name: "collection",
			g: GeometryCollection{
				Point{X: 5, Y: 5},
				LineString{{X: -1, Y: 0}, {X: 0, Y: 1}},
			},
			typ:  TypeGeometryCollection,
			want: EnvelopeOf(-1, 0, 5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.typ, tt.g.GeometryType())
			require.Equal(t, tt.want, tt.g.Envelope())
		})
	}
}

func TestEmptyGeometryEnvelopes(t *testing.T) {
	require.True(t, MultiPoint{}.Envelope().IsEmpty())
	require.True(t, LineString{}.Envelope().IsEmpty())
	require.True(t, Polygon{}.Envelope().IsEmpty())
	require.True(t, GeometryCollection{nil}.Envelope().IsEmpty())
}
