// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the removed value and true, or false if key was not present
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	var value V
	removed := false
	tree.root, value, removed = tree.delete(key, tree.root)
	return value, removed
}

// internal delete routine
func (tree *Tree[K, V]) delete(key K, p *node[K, V]) (*node[K, V], V, bool) {
	var value V
	if nil == p { // key not in tree
		return nil, value, false
	}

	removed := false
	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		p.left, value, removed = tree.delete(key, p.left)
	case c > 0: // key > p.key
		p.right, value, removed = tree.delete(key, p.right)
	default: // found: delete p
		value = p.value // preserve the value part
		removed = true

		if nil == p.left || nil == p.right {
			q := p.left
			if nil == q {
				q = p.right
			}
			tree.freeNode(p) // return deleted node to pool
			return q, value, removed
		}

		// two children: take over the in-order successor
		var successor *node[K, V]
		p.right, successor = tree.detachFirst(p.right)
		p.key = successor.key
		p.value = successor.value
		tree.freeNode(successor)
	}

	if !removed {
		return p, value, false
	}
	return rebalance(p), value, true
}

// unlink the lowest node of a non-empty sub-tree
// returns the new sub-tree root and the detached node
func (tree *Tree[K, V]) detachFirst(p *node[K, V]) (*node[K, V], *node[K, V]) {
	if nil == p.left {
		r := p.right
		p.right = nil
		return r, p
	}
	var first *node[K, V]
	p.left, first = tree.detachFirst(p.left)
	return rebalance(p), first
}
