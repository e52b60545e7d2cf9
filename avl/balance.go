// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, empty = 0
func (p *node[K, V]) depth() int {
	if nil == p {
		return 0
	}
	return p.height
}

// number of nodes in a sub-tree, empty = 0
func (p *node[K, V]) count() int {
	if nil == p {
		return 0
	}
	return p.size
}

// left height - right height
func (p *node[K, V]) balance() int {
	return p.left.depth() - p.right.depth()
}

// recompute height and size from the children
func (p *node[K, V]) update() {
	p.height = 1 + max(p.left.depth(), p.right.depth())
	p.size = 1 + p.left.count() + p.right.count()
}

// single right rotation, the left child becomes the sub-tree root
//
//	    p          p1
//	   / \        /  \
//	  p1  c  =>  a    p
//	 /  \            / \
//	a    b          b   c
func rotateRight[K, V any](p *node[K, V]) *node[K, V] {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	p.update()
	p1.update()
	return p1
}

// single left rotation, the right child becomes the sub-tree root
func rotateLeft[K, V any](p *node[K, V]) *node[K, V] {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	p.update()
	p1.update()
	return p1
}

// restore the height, size and balance of a sub-tree whose children
// are already balanced; returns the possibly new sub-tree root
func rebalance[K, V any](p *node[K, V]) *node[K, V] {
	p.update()

	switch b := p.balance(); {
	case b > 1: // left branch too high
		if p.left.left.depth() < p.left.right.depth() {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)

	case b < -1: // right branch too high
		if p.right.right.depth() < p.right.left.depth() {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}
