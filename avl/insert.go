// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value of
// an existing key
//
// returns the previous value and true if the key was already present
func (tree *Tree[K, V]) Insert(key K, value V) (V, bool) {
	var old V
	replaced := false
	tree.root, old, replaced = tree.insert(key, value, tree.root)
	return old, replaced
}

// internal routine for insert
// returns the new sub-tree root, the old value and whether the key existed
func (tree *Tree[K, V]) insert(key K, value V, p *node[K, V]) (*node[K, V], V, bool) {
	var old V
	if nil == p { // insert new node
		return tree.newNode(key, value), old, false
	}

	replaced := false
	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		p.left, old, replaced = tree.insert(key, value, p.left)
	case c > 0: // key > p.key
		p.right, old, replaced = tree.insert(key, value, p.right)
	default:
		old = p.value
		p.value = value
		return p, old, true
	}

	// structure is unchanged if only a value was replaced
	if replaced {
		return p, old, true
	}
	return rebalance(p), old, false
}
