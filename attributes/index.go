package attributes

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Index is an inverted index over attribute tables using Roaring Bitmaps.
//
// Positions (typically feature positions within a collection) are mapped to
// their tables, and every top-level key/value pair feeds a posting list:
// key -> value-key -> bitmap of positions. Equality and membership filters
// compile to bitmap intersections; the remaining operators fall back to a
// scan.
//
// An Index is safe for concurrent use.
type Index struct {
	mu sync.RWMutex

	// Primary storage (position -> attribute table).
	tables map[uint32]*Table

	// Inverted index: key -> valueKey -> bitmap of positions.
	inverted map[string]map[string]*roaring.Bitmap
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		tables:   make(map[uint32]*Table),
		inverted: make(map[string]map[string]*roaring.Bitmap),
	}
}

// Set stores the table for a position, replacing any previous entry.
func (ix *Index) Set(pos uint32, t *Table) {
	if t == nil {
		return
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if old, ok := ix.tables[pos]; ok {
		ix.removeLocked(pos, old)
	}
	ix.tables[pos] = t
	ix.addLocked(pos, t)
}

// Get retrieves the table for a position.
func (ix *Index) Get(pos uint32) (*Table, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	t, ok := ix.tables[pos]
	return t, ok
}

// Delete removes a position and its postings.
func (ix *Index) Delete(pos uint32) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if t, ok := ix.tables[pos]; ok {
		ix.removeLocked(pos, t)
	}
	delete(ix.tables, pos)
}

// Len returns the number of indexed positions.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return len(ix.tables)
}

func (ix *Index) addLocked(pos uint32, t *Table) {
	t.Range(func(key string, value Value) bool {
		valueMap, ok := ix.inverted[key]
		if !ok {
			valueMap = make(map[string]*roaring.Bitmap)
			ix.inverted[key] = valueMap
		}
		valueKey := value.Key()
		bitmap, ok := valueMap[valueKey]
		if !ok {
			bitmap = roaring.New()
			valueMap[valueKey] = bitmap
		}
		bitmap.Add(pos)
		return true
	})
}

func (ix *Index) removeLocked(pos uint32, t *Table) {
	t.Range(func(key string, value Value) bool {
		valueMap, ok := ix.inverted[key]
		if !ok {
			return true
		}
		valueKey := value.Key()
		bitmap, ok := valueMap[valueKey]
		if !ok {
			return true
		}
		bitmap.Remove(pos)
		if bitmap.IsEmpty() {
			delete(valueMap, valueKey)
			if len(valueMap) == 0 {
				delete(ix.inverted, key)
			}
		}
		return true
	})
}

// Query returns the positions matching all filters in the set, in ascending
// order. Equality and OpIn filters use the posting lists; any other
// operator forces a scan over the stored tables.
func (ix *Index) Query(fs *FilterSet) []uint32 {
	if fs == nil || len(fs.Filters) == 0 {
		return nil
	}

	if bm := ix.compile(fs); bm != nil {
		return bm.ToArray()
	}
	return ix.scan(fs)
}

// compile intersects posting lists for the filter set. It returns nil when
// the set contains an operator that cannot be answered from the index.
func (ix *Index) compile(fs *FilterSet) *roaring.Bitmap {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var result *roaring.Bitmap

	for _, filter := range fs.Filters {
		var filterBitmap *roaring.Bitmap

		switch filter.Operator {
		case OpEqual:
			filterBitmap = ix.bitmapLocked(filter.Key, filter.Value)

		case OpIn:
			arr, ok := filter.Value.AsArray()
			if !ok {
				return nil
			}
			filterBitmap = roaring.New()
			for _, v := range arr {
				if bm := ix.bitmapLocked(filter.Key, v); bm != nil {
					filterBitmap.Or(bm)
				}
			}

		default:
			// Range and substring operators have no posting list.
			return nil
		}

		if filterBitmap == nil {
			return roaring.New()
		}
		if result == nil {
			result = filterBitmap.Clone()
		} else {
			result.And(filterBitmap)
		}
		if result.IsEmpty() {
			return result
		}
	}

	if result == nil {
		return roaring.New()
	}
	return result
}

func (ix *Index) bitmapLocked(key string, value Value) *roaring.Bitmap {
	valueMap, ok := ix.inverted[key]
	if !ok {
		return nil
	}
	return valueMap[value.Key()]
}

// scan evaluates the filter set against every stored table.
func (ix *Index) scan(fs *FilterSet) []uint32 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	bm := roaring.New()
	for pos, t := range ix.tables {
		if fs.Matches(t) {
			bm.Add(pos)
		}
	}
	return bm.ToArray()
}
