// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the item with the lowest key value
func (tree *Tree[K, V]) First() (K, V, bool) {
	return tree.root.first().entry()
}

// internal: lowest node in a sub-tree
func (tree *node[K, V]) first() *node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the item with the highest key value
func (tree *Tree[K, V]) Last() (K, V, bool) {
	return tree.root.last().entry()
}

// internal: highest node in a sub-tree
func (tree *node[K, V]) last() *node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

func (p *node[K, V]) entry() (K, V, bool) {
	if nil == p {
		var key K
		var value V
		return key, value, false
	}
	return p.key, p.value, true
}

// Ascend - call fn for each item in increasing key order until it
// returns false
//
// the tree must not be modified during the walk
func (tree *Tree[K, V]) Ascend(fn func(key K, value V) bool) {
	stack := make([]*node[K, V], 0, tree.Height())
	p := tree.root
	for nil != p || len(stack) > 0 {
		for ; nil != p; p = p.left {
			stack = append(stack, p)
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(p.key, p.value) {
			return
		}
		p = p.right
	}
}

// Descend - call fn for each item in decreasing key order until it
// returns false
func (tree *Tree[K, V]) Descend(fn func(key K, value V) bool) {
	stack := make([]*node[K, V], 0, tree.Height())
	p := tree.root
	for nil != p || len(stack) > 0 {
		for ; nil != p; p = p.right {
			stack = append(stack, p)
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(p.key, p.value) {
			return
		}
		p = p.left
	}
}

// Keys - all keys in increasing order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.Count())
	tree.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
