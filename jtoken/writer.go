package jtoken

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Writer emits a compact JSON token stream.
//
// Commas and colons are inserted from the nesting state, so callers only
// issue structural and value tokens. The first write error is sticky; Flush
// reports it. A Writer is not safe for concurrent use.
type Writer struct {
	w *bufio.Writer

	// Nesting stack: 'o' for objects, 'a' for arrays, with a per-level
	// count of values written so far.
	stack  []byte
	counts []int

	// Set between Name and the member's value.
	pendingName bool

	err error
}

// NewWriter creates a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Flush writes buffered output and returns the first error encountered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s)
}

func (w *Writer) writeBytes(b []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(b)
}

// beforeValue inserts the separator a value needs in the current context.
func (w *Writer) beforeValue() {
	if w.pendingName {
		w.pendingName = false
		return
	}
	if n := len(w.stack); n > 0 {
		if w.counts[n-1] > 0 {
			w.writeString(",")
		}
		w.counts[n-1]++
	}
}

// BeginObject opens an object value.
func (w *Writer) BeginObject() {
	w.beforeValue()
	w.writeString("{")
	w.stack = append(w.stack, 'o')
	w.counts = append(w.counts, 0)
}

// EndObject closes the current object.
func (w *Writer) EndObject() {
	w.pop('o', "}")
}

// BeginArray opens an array value.
func (w *Writer) BeginArray() {
	w.beforeValue()
	w.writeString("[")
	w.stack = append(w.stack, 'a')
	w.counts = append(w.counts, 0)
}

// EndArray closes the current array.
func (w *Writer) EndArray() {
	w.pop('a', "]")
}

func (w *Writer) pop(kind byte, close string) {
	n := len(w.stack)
	if n == 0 || w.stack[n-1] != kind {
		if w.err == nil {
			w.err = fmt.Errorf("unbalanced %s", close)
		}
		return
	}
	w.stack = w.stack[:n-1]
	w.counts = w.counts[:n-1]
	w.writeString(close)
}

// Name emits a member name inside the current object.
func (w *Writer) Name(name string) {
	n := len(w.stack)
	if n == 0 || w.stack[n-1] != 'o' {
		if w.err == nil {
			w.err = fmt.Errorf("member name %q outside object", name)
		}
		return
	}
	if w.counts[n-1] > 0 {
		w.writeString(",")
	}
	w.counts[n-1]++
	w.string(name)
	w.writeString(":")
	w.pendingName = true
}

// String emits a string value.
func (w *Writer) String(s string) {
	w.beforeValue()
	w.string(s)
}

func (w *Writer) string(s string) {
	b, err := json.Marshal(s)
	if err != nil {
		if w.err == nil {
			w.err = err
		}
		return
	}
	w.writeBytes(b)
}

// Int emits an integer value.
func (w *Writer) Int(v int64) {
	w.beforeValue()
	w.writeString(strconv.FormatInt(v, 10))
}

// Float emits a floating-point value. NaN and infinities have no JSON
// representation and poison the writer.
func (w *Writer) Float(v float64) {
	w.beforeValue()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if w.err == nil {
			w.err = fmt.Errorf("unsupported float value: %v", v)
		}
		return
	}
	w.writeString(strconv.FormatFloat(v, 'g', -1, 64))
}

// Bool emits a boolean value.
func (w *Writer) Bool(v bool) {
	w.beforeValue()
	if v {
		w.writeString("true")
	} else {
		w.writeString("false")
	}
}

// Null emits a null value.
func (w *Writer) Null() {
	w.beforeValue()
	w.writeString("null")
}

// Raw splices pre-serialized JSON as a single value. The caller guarantees
// b is a complete, valid JSON value.
func (w *Writer) Raw(b []byte) {
	w.beforeValue()
	w.writeBytes(b)
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}
