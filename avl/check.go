// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the ordering, balance, height and size of every node
//
// returns nil for a consistent tree, otherwise an error describing
// the first inconsistent node found
func (tree *Tree[K, V]) Check() error {
	_, _, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	n := 0
	for p := tree.pool; nil != p; p = p.right {
		n += 1
	}
	if n != tree.freeNodes {
		return fmt.Errorf("%w: pool: %d  expected: %d", fault.ErrCountMismatch, n, tree.freeNodes)
	}
	return nil
}

// internal: consistency checker, all keys must be strictly between
// low and high (nil = unbounded)
// returns the actual height and size of the sub-tree
func (tree *Tree[K, V]) check(p *node[K, V], low *K, high *K) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && tree.compare(*low, p.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrOrderViolation, p.key, *low)
	}
	if nil != high && tree.compare(p.key, *high) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not below: %v", fault.ErrOrderViolation, p.key, *high)
	}

	lh, ls, err := tree.check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	rh, rs, err := tree.check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}

	if b := lh - rh; b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: key: %v  balance: %d", fault.ErrUnbalanced, p.key, b)
	}
	h := 1 + max(lh, rh)
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: key: %v  actual: %d  expected: %d", fault.ErrHeightMismatch, p.key, p.height, h)
	}
	n := 1 + ls + rs
	if n != p.size {
		return 0, 0, fmt.Errorf("%w: key: %v  actual: %d  expected: %d", fault.ErrSizeMismatch, p.key, p.size, n)
	}
	return h, n, nil
}
