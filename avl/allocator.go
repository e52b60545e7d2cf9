// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[K, V any] struct {
	left   *node[K, V] // left sub-tree
	right  *node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // leaf = 1
	size   int         // nodes in this sub-tree, leaf = 1
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V) *node[K, V] {
	p := tree.pool
	if nil == p {
		if 0 != tree.freeNodes {
			panic("avl: pool corrupt")
		}
		return &node[K, V]{
			key:    key,
			value:  value,
			height: 1,
			size:   1,
		}
	}
	tree.pool = p.right
	tree.freeNodes -= 1

	p.right = nil // ensure freelist pointer is cleared
	p.key = key
	p.value = value
	p.height = 1
	p.size = 1
	return p
}

// reclaim a node and keep it in the tree's pool
func (tree *Tree[K, V]) freeNode(p *node[K, V]) {
	var zeroKey K
	var zeroValue V

	p.left = nil
	p.key = zeroKey
	p.value = zeroValue
	p.height = 0
	p.size = 0

	p.right = tree.pool // use as free list pointer
	tree.pool = p
	tree.freeNodes += 1
}
