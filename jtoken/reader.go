// Package jtoken provides a low-level JSON token cursor and token sink.
//
// The Reader wraps encoding/json's token API with the small set of
// primitives streaming decoders need: expect-a-delimiter, read-a-member-name
// and a structural skip that consumes exactly one value regardless of its
// shape. The Writer is the matching sink; encoding/json has no token writer,
// so it is built here.
package jtoken

import (
	"encoding/json"
	"fmt"
	"io"
)

// Reader is a forward-only cursor over a JSON token stream.
//
// Numbers are surfaced as json.Number so callers decide the numeric type.
// A Reader is not safe for concurrent use; each decode call owns its Reader.
type Reader struct {
	dec *json.Decoder
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Reader{dec: dec}
}

// Token returns the next token in the stream.
func (r *Reader) Token() (json.Token, error) {
	return r.dec.Token()
}

// More reports whether the current object or array has members left.
func (r *Reader) More() bool {
	return r.dec.More()
}

// Delim consumes the next token and requires it to be the delimiter d.
func (r *Reader) Delim(d rune) error {
	tok, err := r.Token()
	if err != nil {
		return err
	}
	if got, ok := tok.(json.Delim); !ok || rune(got) != d {
		return fmt.Errorf("expected %q, got %v", d, tok)
	}
	return nil
}

// Name consumes the next token and requires it to be a member name.
func (r *Reader) Name() (string, error) {
	tok, err := r.Token()
	if err != nil {
		return "", err
	}
	name, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected member name, got %v", tok)
	}
	return name, nil
}

// Skip consumes exactly one value of any shape.
//
// Scalars consume a single token. Objects and arrays are consumed
// structurally by tracking open/close depth, so sibling members are left
// untouched: after Skip the cursor sits on the next member name or the
// enclosing close delimiter.
func (r *Reader) Skip() error {
	tok, err := r.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		// Scalar (or a close delimiter, which the json package rejects
		// on its own when unbalanced).
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err = r.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
