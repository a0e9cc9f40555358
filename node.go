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
	"fmt"
	"io"
	"strings"
)

// node is an internal node in a tree.
//
// It must at all times maintain the invariant that every key reachable
// through left is less than key, and every key reachable through right is
// greater than key.  A node owns its children exclusively.
type node[K, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
}

// KeyIterator allows callers of AscendKeys to iterate in-order over the keys
// of the map.  When this function returns false, iteration will stop and
// AscendKeys will immediately return.
type KeyIterator[K any] func(key K) bool

// find returns the node holding key in the subtree rooted at n, or nil if
// there is none.
func (n *node[K, V]) find(key K, less LessFunc[K]) *node[K, V] {
	for n != nil {
		switch {
		case less(key, n.key):
			n = n.left
		case less(n.key, key):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// insert places key in the subtree rooted at n, which must be non-nil.  Should
// an equal key be found, its value is overwritten and the old value returned
// with replaced set to true.
func (n *node[K, V]) insert(key K, value V, less LessFunc[K]) (old V, replaced bool) {
	for {
		switch {
		case less(key, n.key):
			if n.left == nil {
				n.left = &node[K, V]{key: key, value: value}
				return
			}
			n = n.left
		case less(n.key, key):
			if n.right == nil {
				n.right = &node[K, V]{key: key, value: value}
				return
			}
			n = n.right
		default:
			old, n.value = n.value, value
			return old, true
		}
	}
}

// walk visits the subtree in-order until fn returns false, reporting whether
// it ran to completion.
func (n *node[K, V]) walk(fn func(*node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return n.left.walk(fn) && fn(n) && n.right.walk(fn)
}

// containsValue searches the subtree pre-order for a value equal to target.
func (n *node[K, V]) containsValue(target V, equal EqualFunc[V]) bool {
	if n == nil {
		return false
	}
	if equal(n.value, target) {
		return true
	}
	if n.left.containsValue(target, equal) {
		return true
	}
	return n.right.containsValue(target, equal)
}

// height returns the number of nodes on the longest root-to-leaf path.
func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	l, r := n.left.height(), n.right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// min returns the node with the smallest key in the subtree.
func min[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the node with the largest key in the subtree.
func max[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// print is used for debugging purposes.
func (n *node[K, V]) print(w io.Writer, level int, side string) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s%sNODE:%v=%v\n", strings.Repeat("  ", level), side, n.key, n.value)
	n.left.print(w, level+1, "L ")
	n.right.print(w, level+1, "R ")
}
