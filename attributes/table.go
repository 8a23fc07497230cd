package attributes

import "sort"

// IDKey is the reserved attribute key for the feature identifier. The
// codec surfaces it as a top-level member on the wire but it always lives
// under this key in the table.
const IDKey = "id"

// Table is an insertion-ordered mapping from attribute name to Value.
//
// Overwriting an existing key keeps its original position. A Table is not
// safe for concurrent mutation.
type Table struct {
	keys   []string
	values map[string]Value
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]Value)}
}

// TableFromAny converts a legacy map[string]any document into a Table.
// Map iteration order is unspecified, so keys are inserted sorted to keep
// the result deterministic.
func TableFromAny(m map[string]any) (*Table, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := NewTable()
	for _, k := range keys {
		v, err := FromAny(m[k])
		if err != nil {
			return nil, err
		}
		t.Set(k, v)
	}
	return t, nil
}

// Len returns the number of attributes.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Has reports whether the table contains key.
func (t *Table) Has(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.values[key]
	return ok
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	v, ok := t.values[key]
	return v, ok
}

// Set stores value under key, appending the key if it is new.
func (t *Table) Set(key string, value Value) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Delete removes key and its value. It reports whether the key existed.
func (t *Table) Delete(key string) bool {
	if t == nil {
		return false
	}
	if _, ok := t.values[key]; !ok {
		return false
	}
	delete(t.values, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the attribute names in insertion order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Range calls fn for each attribute in insertion order until fn returns
// false.
func (t *Table) Range(fn func(key string, value Value) bool) {
	if t == nil {
		return
	}
	for _, k := range t.keys {
		if !fn(k, t.values[k]) {
			return
		}
	}
}

// ID returns the identifier value, if present.
func (t *Table) ID() (Value, bool) {
	return t.Get(IDKey)
}

// SetID stores the identifier value under the reserved key.
func (t *Table) SetID(v Value) {
	t.Set(IDKey, v)
}

// Clone creates a deep copy of the table.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	c := &Table{
		keys:   make([]string, len(t.keys)),
		values: make(map[string]Value, len(t.values)),
	}
	copy(c.keys, t.keys)
	for k, v := range t.values {
		c.values[k] = v.clone()
	}
	return c
}

// Equal reports whether two tables hold the same keys in the same order
// with equal values.
func (t *Table) Equal(o *Table) bool {
	if t.Len() != o.Len() {
		return false
	}
	if t == nil || o == nil {
		return true
	}
	for i, k := range t.keys {
		if o.keys[i] != k {
			return false
		}
		ov, ok := o.values[k]
		if !ok || !t.values[k].Equal(ov) {
			return false
		}
	}
	return true
}
