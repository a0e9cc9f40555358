// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package treemap implements an in-memory ordered map backed by a binary
// search tree.
//
// The tree is a plain, unbalanced binary search tree: its shape is a pure
// function of insertion order, so lookups cost O(depth), which is O(log n)
// for randomized insertion and O(n) when keys arrive already sorted.  No
// rotation or rebalancing ever happens, and entries are never removed
// except by Clear.  Delete and Entries exist only to report ErrUnsupported.
//
// Keys are ordered by a LessFunc.  Constructors are provided for types
// supporting '<' (NewOrdered), for types implementing Item (NewItem), and for
// any type with an explicit LessFunc (New).  A nil key of a nilable key type
// (pointer, interface, map, slice, func or chan) is rejected with
// ErrInvalidKey.  Values are unconstrained; nil is a valid value.
package treemap

import (
	"io"
	"iter"

	"github.com/rs/zerolog"
)

// Map is an ordered map from K to V.
//
// A Map is not safe for concurrent use.  The zero value is not usable; create
// maps with New, NewWithEqual, NewOrdered or NewItem.
type Map[K, V any] struct {
	root   *node[K, V]
	length int
	less   LessFunc[K]
	equal  EqualFunc[V]
	logger zerolog.Logger
}

// Entry is a key/value pair.  The map never hands entries out; see Entries.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// New creates an empty map ordered by less.  Values are compared with
// DeepEqual.
func New[K, V any](less LessFunc[K]) *Map[K, V] {
	return NewWithEqual[K, V](less, DeepEqual[V]())
}

// NewWithEqual creates an empty map ordered by less, comparing values with
// equal.
func NewWithEqual[K, V any](less LessFunc[K], equal EqualFunc[V]) *Map[K, V] {
	if less == nil {
		panic("nil less func")
	}
	if equal == nil {
		panic("nil equal func")
	}
	return &Map[K, V]{
		less:   less,
		equal:  equal,
		logger: zerolog.Nop(),
	}
}

// NewOrdered creates an empty map for keys ordered by '<'.
func NewOrdered[K Ordered, V any]() *Map[K, V] {
	return New[K, V](Less[K]())
}

// NewItem creates an empty map for keys ordered by their own Less method.
func NewItem[K Item[K], V any]() *Map[K, V] {
	return New[K, V](ItemLess[K]())
}

// SetLogger sets the logger that receives debug events for rejected calls.
func (m *Map[K, V]) SetLogger(l zerolog.Logger) {
	m.logger = l
}

func (m *Map[K, V]) reject(op string, err error) error {
	m.logger.Debug().Str("op", op).Err(err).Msg("rejected")
	return err
}

// findNode returns the node holding key, or nil.  It fails with
// ErrInvalidKey when key is nil.
func (m *Map[K, V]) findNode(op string, key K) (*node[K, V], error) {
	if isNil(key) {
		return nil, m.reject(op, invalidKey(op))
	}
	return m.root.find(key, m.less), nil
}

// Get looks for key in the map, returning its value.  It returns
// (zeroValue, false, nil) if the key is not present.
func (m *Map[K, V]) Get(key K) (_ V, _ bool, err error) {
	n, err := m.findNode("get", key)
	if err != nil || n == nil {
		return
	}
	return n.value, true, nil
}

// Has returns true if the given key is in the map.
func (m *Map[K, V]) Has(key K) (bool, error) {
	n, err := m.findNode("has", key)
	return n != nil, err
}

// ContainsValue reports whether any key maps to a value equal to target.
// Values are unordered within the tree, so every entry may be visited.
func (m *Map[K, V]) ContainsValue(target V) bool {
	return m.root.containsValue(target, m.equal)
}

// Put maps key to value.  If the key is already present, its value is
// overwritten in place and the old value is returned with replaced set to
// true.  Otherwise (zeroValue, false, nil) is returned.
//
// A nil key cannot be added to the map (ErrInvalidKey).
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool, err error) {
	if isNil(key) {
		err = m.reject("put", invalidKey("put"))
		return
	}
	if m.root == nil {
		m.root = &node[K, V]{key: key, value: value}
		m.length++
		return
	}
	old, replaced = m.root.insert(key, value, m.less)
	if !replaced {
		m.length++
	}
	return old, replaced, nil
}

// PutAll puts every pair yielded by other, in the order other yields them,
// so PutAll(maps.All(src)) copies a Go map.  It stops at the first failure;
// entries put before it remain in the map.
func (m *Map[K, V]) PutAll(other iter.Seq2[K, V]) error {
	for k, v := range other {
		if _, _, err := m.Put(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Merge puts every entry of other, in other's ascending key order.  Other is
// left unchanged.
func (m *Map[K, V]) Merge(other *Map[K, V]) error {
	var err error
	other.root.walk(func(n *node[K, V]) bool {
		_, _, err = m.Put(n.key, n.value)
		return err == nil
	})
	return err
}

// Keys returns the keys of the map in ascending order.  The slice is a fresh
// snapshot; later changes to the map are not reflected in it.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.length)
	m.AscendKeys(func(k K) bool {
		out = append(out, k)
		return true
	})
	return out
}

// AscendKeys calls the iterator for every key in the map in ascending order,
// until iterator returns false.
func (m *Map[K, V]) AscendKeys(iterator KeyIterator[K]) {
	m.root.walk(func(n *node[K, V]) bool { return iterator(n.key) })
}

// Values returns the distinct values of the map, in no particular order.
// Values equal under the map's EqualFunc appear once.  Since values carry no
// ordering or hash, deduplication costs O(n*d) for d distinct values.
func (m *Map[K, V]) Values() []V {
	var out []V
	stack := []*node[K, V]{m.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		if !m.containsEqual(out, n.value) {
			out = append(out, n.value)
		}
		stack = append(stack, n.left, n.right)
	}
	return out
}

func (m *Map[K, V]) containsEqual(vs []V, v V) bool {
	for _, x := range vs {
		if m.equal(x, v) {
			return true
		}
	}
	return false
}

// Min returns the smallest key in the map, or (zeroValue, false) if the map
// is empty.
func (m *Map[K, V]) Min() (_ K, _ bool) {
	if n := min(m.root); n != nil {
		return n.key, true
	}
	return
}

// Max returns the largest key in the map, or (zeroValue, false) if the map is
// empty.
func (m *Map[K, V]) Max() (_ K, _ bool) {
	if n := max(m.root); n != nil {
		return n.key, true
	}
	return
}

// Len returns the number of entries currently in the map.
func (m *Map[K, V]) Len() int {
	return m.length
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.length == 0
}

// Height returns the depth of the tree: 0 when empty, otherwise the number
// of nodes on the longest path from the root to a leaf.
func (m *Map[K, V]) Height() int {
	return m.root.height()
}

// Clear removes all entries from the map.  The root is simply dereferenced
// and the old tree left to Go's normal GC processes, so this is O(1).
func (m *Map[K, V]) Clear() {
	m.root, m.length = nil, 0
}

// Delete always fails with ErrUnsupported.  The map has no removal.
func (m *Map[K, V]) Delete(key K) (_ V, _ bool, err error) {
	err = m.reject("delete", unsupported("delete"))
	return
}

// Entries always fails with ErrUnsupported.  Use Keys with Get instead.
func (m *Map[K, V]) Entries() ([]Entry[K, V], error) {
	return nil, m.reject("entries", unsupported("entries"))
}

// Dump writes an indented rendering of the tree shape to w, one node per
// line, children marked L or R.
func (m *Map[K, V]) Dump(w io.Writer) {
	m.root.print(w, 0, "")
}
