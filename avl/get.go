// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Nth - key and value of the item at a zero based in-order index
func (tree *Tree[K, V]) Nth(index int) (K, V, bool) {
	var key K
	var value V
	if index < 0 || index >= tree.Count() {
		return key, value, false
	}
	p := nth(index, tree.root)
	if nil == p {
		return key, value, false
	}
	return p.key, p.value, true
}

func nth[K, V any](index int, tree *node[K, V]) *node[K, V] {
	for nil != tree {
		nl := tree.left.count()

		if index < nl {
			tree = tree.left
		} else if index > nl {
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			tree = tree.right
		} else {
			return tree
		}
	}
	return nil
}
