package geom

import "math"

// Envelope is an axis-aligned rectangle with min/max coordinates on two
// axes. The zero value is NOT valid; use NewEnvelope or EnvelopeOf.
type Envelope struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewEnvelope returns an empty envelope. Expanding it with the first
// coordinate makes it non-empty.
func NewEnvelope() Envelope {
	return Envelope{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// EnvelopeOf returns the envelope with the given bounds.
func EnvelopeOf(minX, minY, maxX, maxY float64) Envelope {
	return Envelope{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// IsEmpty reports whether the envelope contains no coordinates.
func (e Envelope) IsEmpty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}

// ExpandToInclude grows the envelope to contain the coordinate (x, y).
func (e *Envelope) ExpandToInclude(x, y float64) {
	if x < e.MinX {
		e.MinX = x
	}
	if x > e.MaxX {
		e.MaxX = x
	}
	if y < e.MinY {
		e.MinY = y
	}
	if y > e.MaxY {
		e.MaxY = y
	}
}

// ExpandToIncludeEnvelope grows the envelope to contain o.
func (e *Envelope) ExpandToIncludeEnvelope(o Envelope) {
	if o.IsEmpty() {
		return
	}
	e.ExpandToInclude(o.MinX, o.MinY)
	e.ExpandToInclude(o.MaxX, o.MaxY)
}

// Width returns the extent on the X axis, or 0 for an empty envelope.
func (e Envelope) Width() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.MaxX - e.MinX
}

// Height returns the extent on the Y axis, or 0 for an empty envelope.
func (e Envelope) Height() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.MaxY - e.MinY
}

// Contains reports whether the coordinate (x, y) lies inside the envelope.
func (e Envelope) Contains(x, y float64) bool {
	return !e.IsEmpty() &&
		x >= e.MinX && x <= e.MaxX &&
		y >= e.MinY && y <= e.MaxY
}
