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

package treemap

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Item is implemented by key types that know how to order themselves.
type Item[T any] interface {
	// Less tests whether the current item is less than the given argument.
	//
	// This must provide a strict weak ordering.
	// If !a.Less(b) && !b.Less(a), we treat this to mean a == b (i.e. the map
	// holds a single entry for either a or b).
	Less(than T) bool
}

// Ordered represents the set of types for which the '<' operator works.
type Ordered interface {
	constraints.Ordered
}

// LessFunc[K] determines how to order keys of type 'K'.  It should implement
// a strict ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[K any] func(a, b K) bool

// EqualFunc[V] reports whether two values are equal.  It is only consulted by
// ContainsValue and Values; values take no part in the key ordering.
type EqualFunc[V any] func(a, b V) bool

// Less[K] returns a default LessFunc that uses the '<' operator for types that
// support it.
func Less[K Ordered]() LessFunc[K] {
	return func(a, b K) bool { return a < b }
}

// ItemLess[K] returns a LessFunc that defers to K's own Less method.
func ItemLess[K Item[K]]() LessFunc[K] {
	return func(a, b K) bool { return a.Less(b) }
}

// DeepEqual[V] returns the default EqualFunc.  Two nil values are equal to
// each other and a nil value never equals a non-nil one.
func DeepEqual[V any]() EqualFunc[V] {
	return func(a, b V) bool { return reflect.DeepEqual(a, b) }
}

// isNil reports whether k is the absent key: a nil pointer, interface, map,
// slice, func or chan.  Keys of any other kind are never absent.
func isNil[K any](k K) bool {
	v := reflect.ValueOf(any(k))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
