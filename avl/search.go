// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Get - find the value for a specific key
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	p, _ := tree.search(key)
	if nil == p {
		var value V
		return value, false
	}
	return p.value, true
}

// GetPointer - pointer to the stored value of a key so it can be
// modified in place, nil if the key is not present
func (tree *Tree[K, V]) GetPointer(key K) *V {
	p, _ := tree.search(key)
	if nil == p {
		return nil
	}
	return &p.value
}

// MustGet - value of a key that is known to be present
//
// panics with an error matching fault.ErrKeyNotFound if it is not
func (tree *Tree[K, V]) MustGet(key K) V {
	p, _ := tree.search(key)
	if nil == p {
		panic(fmt.Errorf("%w: %v", fault.ErrKeyNotFound, key))
	}
	return p.value
}

// Has - true if key is present
func (tree *Tree[K, V]) Has(key K) bool {
	p, _ := tree.search(key)
	return nil != p
}

// Rank - zero based in-order index of a key
func (tree *Tree[K, V]) Rank(key K) (int, bool) {
	p, index := tree.search(key)
	return index, nil != p
}

// returns the node and its index, or nil and -1
func (tree *Tree[K, V]) search(key K) (*node[K, V], int) {
	index := 0
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			index += p.left.count() + 1
			p = p.right
		default:
			return p, index + p.left.count()
		}
	}
	return nil, -1
}
