// Package geojson is a streaming codec between GeoJSON text and an
// in-memory feature model.
//
// A Feature pairs an optional geometry, an optional insertion-ordered
// attribute table, an optional identifier and an optional bounding box.
// The codec processes the input as a JSON token sequence rather than a
// materialized tree: unknown members are skipped structurally, the
// identifier's runtime type is inferred from its token shape (32-bit
// integer, 64-bit integer, UUID or plain string) and folded into the
// attribute table under the reserved key "id", and a missing bbox is
// derived from the geometry envelope at encode time.
//
// # Usage
//
//	codec := geojson.New()
//	f, err := codec.DecodeFeature(strings.NewReader(input))
//	...
//	err = codec.EncodeFeature(&buf, f)
//
// A Codec holds only configuration and stateless collaborators and is safe
// for concurrent use as long as each call owns its reader or writer.
//
// Geometry and properties sub-documents are handled by the GeometryCodec
// and AttributesCodec collaborators; both have default implementations and
// can be replaced via options.
package geojson
