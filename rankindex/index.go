// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rankindex

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Index - records ordered by key with access by rank
type Index struct {
	log  *logger.L
	tree *avl.Tree[string, []byte]
}

// Build - read every record of a source into a new index
//
// a key that is delivered more than once keeps its last value
func Build(source Source, log *logger.L) (*Index, error) {
	if nil == source {
		return nil, fault.ErrNilSource
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	tree := avl.New[string, []byte]()
	records := 0

	err := source.Each(func(key []byte, value []byte) error {
		v := make([]byte, len(value))
		copy(v, value)

		if _, replaced := tree.Insert(string(key), v); replaced {
			log.Debugf("duplicate key: %x", key)
		}
		records += 1
		return nil
	})
	if nil != err {
		log.Errorf("read source error: %s", err)
		return nil, err
	}

	if err := tree.Check(); nil != err {
		log.Criticalf("index inconsistent: %s", err)
		return nil, err
	}

	log.Infof("records: %d  keys: %d  height: %d", records, tree.Count(), tree.Height())

	return &Index{
		log:  log,
		tree: tree,
	}, nil
}

// Count - number of distinct keys
func (ix *Index) Count() int {
	return ix.tree.Count()
}

// Tree - the underlying tree
func (ix *Index) Tree() *avl.Tree[string, []byte] {
	return ix.tree
}

// Lookup - value of a key
func (ix *Index) Lookup(key []byte) ([]byte, bool) {
	return ix.tree.Get(string(key))
}

// At - key and value at a zero based rank
func (ix *Index) At(rank int) ([]byte, []byte, bool) {
	key, value, ok := ix.tree.Nth(rank)
	if !ok {
		ix.log.Debugf("rank: %d out of range: [0, %d)", rank, ix.tree.Count())
		return nil, nil, false
	}
	return []byte(key), value, true
}

// RankOf - zero based rank of a key
func (ix *Index) RankOf(key []byte) (int, bool) {
	return ix.tree.Rank(string(key))
}

// Page - call fn for up to count records starting at a rank
//
// returns the number of records visited
func (ix *Index) Page(start int, count int, fn func(rank int, key []byte, value []byte) bool) (int, error) {
	if start < 0 || start > ix.tree.Count() {
		return 0, fmt.Errorf("%w: start: %d  count: %d", fault.ErrInvalidIndex, start, ix.tree.Count())
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: page size: %d", fault.ErrInvalidIndex, count)
	}

	n := 0
	for rank := start; rank < start+count; rank += 1 {
		key, value, ok := ix.tree.Nth(rank)
		if !ok {
			break
		}
		n += 1
		if !fn(rank, []byte(key), value) {
			break
		}
	}
	return n, nil
}
