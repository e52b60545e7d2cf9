// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// keyboard order, so the inserts are far from sorted
const demoKeys = "qwertyuiopasdfghjklzxcvbnm"

// build the demonstration tree: each letter maps to its insertion position
func demoTree() *avl.Tree[rune, int] {
	tree := avl.New[rune, int]()
	for i, k := range demoKeys {
		tree.Insert(k, i)
	}
	return tree
}

// insert the alphabet and query it by key and by rank
func runDemo(out io.Writer, log *logger.L, printData bool) error {
	tree := demoTree()
	if err := tree.Check(); nil != err {
		return err
	}
	log.Infof("demo: count: %d  height: %d", tree.Count(), tree.Height())

	fmt.Fprintf(out, "count: %d  height: %d\n", tree.Count(), tree.Height())

	if value, ok := tree.Get('a'); ok {
		fmt.Fprintf(out, "get('a'): %d\n", value)
	}

	last := tree.Count() - 1
	if key, value, ok := tree.Nth(last); ok {
		fmt.Fprintf(out, "nth(%d): %q → %d\n", last, key, value)
	}

	if rank, ok := tree.Rank('m'); ok {
		fmt.Fprintf(out, "rank('m'): %d\n", rank)
	}

	fmt.Fprintf(out, "keys:")
	tree.Ascend(func(key rune, _ int) bool {
		fmt.Fprintf(out, " %c", key)
		return true
	})
	fmt.Fprintf(out, "\n")

	tree.Print(out, printData)
	return nil
}
