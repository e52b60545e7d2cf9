// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree where every node also records
// the height and the number of nodes in its sub-tree, so that an item
// can be fetched by its in-order index in O(log n)
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node is owned by exactly one parent (or the tree root) and
// there are no parent pointers, so iteration uses an explicit stack.
//
// Data is associated with each key and is overwritten by an insert
// with the same key.  Deleting a node with two children moves the
// in-order successor's key and value into that node, so a value
// pointer obtained from GetPointer is only valid until the next
// Insert of a new key or Delete.
package avl
