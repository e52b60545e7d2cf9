// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    *node[K, V]
	compare func(a, b K) int

	// reclaimed nodes, linked through their right pointer
	pool      *node[K, V]
	freeNodes int
}

// New - create an initially empty tree using the natural ordering of
// the key type
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by compare, which
// must return a negative, zero or positive value when a is less than,
// equal to or greater than b
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		root:    nil,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.root.count()
}

// Height - height of the tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return tree.root.depth()
}

// Clear - remove all items, the nodes are not kept for reuse
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.pool = nil
	tree.freeNodes = 0
}
