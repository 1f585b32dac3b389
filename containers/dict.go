package containers

import "iter"

// Dict is a key/value map container.
//
// Dict deliberately exposes no single-element insertion capability — its
// write operation is [Dict.Put], which takes a key and a value. Targeting a
// Dict kind with collect.Into therefore fails the capability check before
// any traversal: a flat sequence of elements carries no keys to insert
// under.
type Dict[K comparable, V any] struct {
	items map[K]V
}

// NewDict creates an empty Dict.
func NewDict[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{items: make(map[K]V)}
}

// Put stores v under k, replacing any existing value.
func (d *Dict[K, V]) Put(k K, v V) {
	d.items[k] = v
}

// Get returns the value stored under k together with a presence flag.
func (d *Dict[K, V]) Get(k K) (V, bool) {
	v, ok := d.items[k]
	return v, ok
}

// Has reports whether k is present.
func (d *Dict[K, V]) Has(k K) bool {
	_, ok := d.items[k]
	return ok
}

// Delete removes k and reports whether it was present.
func (d *Dict[K, V]) Delete(k K) bool {
	_, ok := d.items[k]
	delete(d.items, k)
	return ok
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int { return len(d.items) }

// Keys returns the keys in unspecified order.
func (d *Dict[K, V]) Keys() []K {
	out := make([]K, 0, len(d.items))
	for k := range d.items {
		out = append(out, k)
	}
	return out
}

// Entries returns an iterator over key/value pairs in unspecified order.
func (d *Dict[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range d.items {
			if !yield(k, v) {
				return
			}
		}
	}
}
