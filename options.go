package geojson

import "github.com/hupe1980/geojson/attributes"

type options struct {
	ignoreNullValues bool
	idPropertyName   string
	newFeature       func() *Feature
	newTable         func() *attributes.Table
	geometryCodec    GeometryCodec
	attributesCodec  AttributesCodec
	logger           *Logger
}

// Option configures Codec behavior.
//
// Options exist to avoid exploding the constructor surface; a Codec is
// immutable once constructed.
type Option func(*options)

// WithIgnoreNullValues controls the null-emission policy: when true
// (the default), optional members with no value are omitted; when false,
// they are written as explicit null.
func WithIgnoreNullValues(ignore bool) Option {
	return func(o *options) {
		o.ignoreNullValues = ignore
	}
}

// WithIDPropertyName overrides the top-level member name used for the
// feature identifier. The internal attribute key stays attributes.IDKey.
func WithIDPropertyName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.idPropertyName = name
		}
	}
}

// WithFeatureFactory overrides the constructor used for decoded features,
// enabling custom domain subtypes. The factory must be a pure function with
// no shared mutable state.
func WithFeatureFactory(fn func() *Feature) Option {
	return func(o *options) {
		if fn != nil {
			o.newFeature = fn
		}
	}
}

// WithAttributesFactory overrides the constructor used for decoded
// attribute tables. The factory must be a pure function with no shared
// mutable state.
func WithAttributesFactory(fn func() *attributes.Table) Option {
	return func(o *options) {
		if fn != nil {
			o.newTable = fn
		}
	}
}

// WithGeometryCodec overrides the geometry collaborator codec.
func WithGeometryCodec(gc GeometryCodec) Option {
	return func(o *options) {
		if gc != nil {
			o.geometryCodec = gc
		}
	}
}

// WithAttributesCodec overrides the attributes collaborator codec.
func WithAttributesCodec(ac AttributesCodec) Option {
	return func(o *options) {
		if ac != nil {
			o.attributesCodec = ac
		}
	}
}

// WithLogger configures the logger. Defaults to a noop logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() options {
	return options{
		ignoreNullValues: true,
		idPropertyName:   attributes.IDKey,
		newFeature:       NewFeature,
		newTable:         attributes.NewTable,
		logger:           NoopLogger(),
	}
}
