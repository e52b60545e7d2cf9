// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func alphabetTree(t *testing.T) *avl.Tree[rune, int] {
	tree := avl.New[rune, int]()
	for i, ch := range "qwertyuiopasdfghjklzxcvbnm" {
		_, replaced := tree.Insert(ch, i)
		require.False(t, replaced, "new key %q reported as replaced", ch)
	}
	require.Nil(t, tree.Check(), "inconsistent alphabet tree")
	return tree
}

func TestAlphabet(t *testing.T) {
	tree := alphabetTree(t)

	assert.Equal(t, 26, tree.Count(), "wrong count")

	v, ok := tree.Get('a')
	assert.True(t, ok, "'a' not found")
	assert.Equal(t, 10, v, "wrong value for 'a'")

	k, v, ok := tree.Nth(25)
	assert.True(t, ok, "rank 25 not found")
	assert.Equal(t, 'z', k, "wrong key at rank 25")
	assert.Equal(t, 19, v, "wrong value at rank 25")

	_, _, ok = tree.Nth(26)
	assert.False(t, ok, "rank 26 should be absent")

	for i := 0; i < 26; i += 1 {
		k, _, ok := tree.Nth(i)
		assert.True(t, ok, "rank %d not found", i)
		assert.Equal(t, rune('a'+i), k, "wrong key at rank %d", i)
	}

	// 26 nodes fit in an AVL tree of height 5 or 6
	assert.LessOrEqual(t, tree.Height(), 6, "tree too high")
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New[string, int]()

	assert.True(t, tree.IsEmpty(), "new tree not empty")
	assert.Equal(t, 0, tree.Count(), "wrong count")
	assert.Equal(t, 0, tree.Height(), "wrong height")

	_, _, ok := tree.Nth(0)
	assert.False(t, ok, "nth on empty tree")

	_, ok = tree.Get("anything")
	assert.False(t, ok, "get on empty tree")

	assert.Nil(t, tree.GetPointer("anything"), "pointer on empty tree")

	_, ok = tree.Delete("anything")
	assert.False(t, ok, "delete on empty tree")

	_, ok = tree.Rank("anything")
	assert.False(t, ok, "rank on empty tree")

	_, _, ok = tree.First()
	assert.False(t, ok, "first on empty tree")
	_, _, ok = tree.Last()
	assert.False(t, ok, "last on empty tree")

	assert.Equal(t, 0, len(tree.Keys()), "keys on empty tree")

	var buffer bytes.Buffer
	assert.Equal(t, 0, tree.Print(&buffer, true), "print depth")
	assert.Equal(t, "", buffer.String(), "print output")

	assert.Nil(t, tree.Check(), "empty tree check")
}

func TestInsertThenRemoveSingle(t *testing.T) {
	tree := avl.New[rune, int]()
	tree.Insert('a', 1)

	v, ok := tree.Delete('a')
	assert.True(t, ok, "not removed")
	assert.Equal(t, 1, v, "wrong removed value")

	assert.Equal(t, 0, tree.Count(), "wrong count")
	assert.True(t, tree.IsEmpty(), "not empty")
	_, ok = tree.Get('a')
	assert.False(t, ok, "still present")
	_, _, ok = tree.Nth(0)
	assert.False(t, ok, "nth on emptied tree")

	_, ok = tree.Delete('a')
	assert.False(t, ok, "second delete succeeded")
}

func TestRoundTrip(t *testing.T) {
	tree := avl.New[int, string]()
	r := rand.New(rand.NewSource(12345))

	for i := 0; i < 500; i += 1 {
		key := r.Intn(1000)
		value := strings.Repeat("x", key%7)
		tree.Insert(key, value)

		v, ok := tree.Get(key)
		require.True(t, ok, "key: %d not found after insert", key)
		require.Equal(t, value, v, "key: %d wrong value", key)
	}
	require.Nil(t, tree.Check())

	for _, key := range tree.Keys() {
		_, ok := tree.Delete(key)
		require.True(t, ok, "key: %d not deleted", key)
		_, ok = tree.Get(key)
		require.False(t, ok, "key: %d present after delete", key)
	}
	assert.True(t, tree.IsEmpty(), "not empty")
}

func TestUpdateSemantics(t *testing.T) {
	tree := alphabetTree(t)
	count := tree.Count()

	old, replaced := tree.Insert('m', 100)
	assert.True(t, replaced, "existing key not replaced")
	assert.Equal(t, 25, old, "wrong previous value")
	assert.Equal(t, count, tree.Count(), "count changed")

	v, _ := tree.Get('m')
	assert.Equal(t, 100, v, "value not updated")

	old, replaced = tree.Insert('M', 200)
	assert.False(t, replaced, "new key reported as replaced")
	assert.Equal(t, 0, old, "zero value expected")
	assert.Equal(t, count+1, tree.Count(), "count not incremented")
}

func TestGetPointer(t *testing.T) {
	tree := alphabetTree(t)

	p := tree.GetPointer('b')
	require.NotNil(t, p, "'b' not found")
	*p += 7

	v, _ := tree.Get('b')
	assert.Equal(t, 30, v, "value not modified in place")

	// update or insert
	if p := tree.GetPointer('!'); nil != p {
		*p += 7
	} else {
		tree.Insert('!', 7)
	}
	v, ok := tree.Get('!')
	assert.True(t, ok, "'!' not inserted")
	assert.Equal(t, 7, v, "wrong value for '!'")
}

func TestMustGet(t *testing.T) {
	tree := alphabetTree(t)

	assert.Equal(t, 0, tree.MustGet('q'), "wrong value for 'q'")
	assert.Equal(t, 25, tree.MustGet('m'), "wrong value for 'm'")

	defer func() {
		r := recover()
		require.NotNil(t, r, "missing key did not panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		assert.True(t, errors.Is(err, fault.ErrKeyNotFound), "wrong panic error: %v", err)
		assert.True(t, fault.IsErrNotFound(err), "not classified as not found: %v", err)
	}()
	tree.MustGet('?')
	t.Fatal("unreachable")
}

func TestRankConsistency(t *testing.T) {
	tree := avl.New[int, int]()
	r := rand.New(rand.NewSource(42))
	inserted := make(map[int]struct{})
	for i := 0; i < 2000; i += 1 {
		k := r.Intn(5000)
		tree.Insert(k, -k)
		inserted[k] = struct{}{}
	}
	for i := 0; i < 700; i += 1 {
		k := r.Intn(5000)
		tree.Delete(k)
		delete(inserted, k)
	}
	require.Nil(t, tree.Check())
	require.Equal(t, len(inserted), tree.Count(), "count mismatch")

	expected := make([]int, 0, len(inserted))
	for k := range inserted {
		expected = append(expected, k)
	}
	sort.Ints(expected)

	for i, e := range expected {
		k, v, ok := tree.Nth(i)
		require.True(t, ok, "rank: %d missing", i)
		require.Equal(t, e, k, "rank: %d wrong key", i)
		require.Equal(t, -e, v, "rank: %d wrong value", i)

		rank, ok := tree.Rank(k)
		require.True(t, ok, "key: %d rank missing", k)
		require.Equal(t, i, rank, "key: %d wrong rank", k)
	}
	_, _, ok := tree.Nth(len(expected))
	assert.False(t, ok, "rank beyond end present")
	_, _, ok = tree.Nth(len(expected) + 10)
	assert.False(t, ok, "rank far beyond end present")
}

func TestCustomOrder(t *testing.T) {
	// reverse ordering, case insensitive
	tree := avl.NewFunc[string, int](func(a, b string) int {
		return -strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	for i, s := range []string{"b", "A", "d", "C", "e"} {
		tree.Insert(s, i)
	}
	assert.Equal(t, []string{"e", "d", "C", "b", "A"}, tree.Keys(), "wrong order")

	old, replaced := tree.Insert("c", 99)
	assert.True(t, replaced, "case insensitive key not matched")
	assert.Equal(t, 3, old, "wrong old value")
	assert.Equal(t, 5, tree.Count(), "wrong count")

	k, _, ok := tree.Nth(0)
	assert.True(t, ok)
	assert.Equal(t, "e", k, "wrong first key")
	assert.Nil(t, tree.Check())
}

func TestNilCompare(t *testing.T) {
	assert.Panics(t, func() {
		avl.NewFunc[int, int](nil)
	}, "nil compare accepted")
}

func TestStopWalk(t *testing.T) {
	tree := alphabetTree(t)

	seen := ""
	tree.Ascend(func(key rune, _ int) bool {
		seen += string(key)
		return len(seen) < 3
	})
	assert.Equal(t, "abc", seen, "ascend did not stop")

	seen = ""
	tree.Descend(func(key rune, _ int) bool {
		seen += string(key)
		return len(seen) < 3
	})
	assert.Equal(t, "zyx", seen, "descend did not stop")
}

func TestClearAndReuse(t *testing.T) {
	tree := alphabetTree(t)

	// deletions fill the node pool, the following inserts reuse it
	for _, ch := range "aeiou" {
		tree.Delete(ch)
	}
	require.Nil(t, tree.Check())
	for _, ch := range "AEIOU" {
		tree.Insert(ch, int(ch))
	}
	require.Nil(t, tree.Check())
	assert.Equal(t, 26, tree.Count(), "wrong count")

	v, ok := tree.Get('E')
	assert.True(t, ok, "reused node lost key")
	assert.Equal(t, int('E'), v, "reused node lost value")

	tree.Clear()
	assert.True(t, tree.IsEmpty(), "not empty after clear")
	assert.Equal(t, 0, tree.Count(), "count after clear")
	assert.Nil(t, tree.Check())

	tree.Insert('z', 1)
	assert.Equal(t, 1, tree.Count(), "insert after clear")
}

func TestPrint(t *testing.T) {
	tree := avl.New[int, string]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k, "v")
	}

	var buffer bytes.Buffer
	depth := tree.Print(&buffer, false)
	assert.Equal(t, 2, depth, "wrong depth")
	expected := "       /------+ 3\n" +
		"|------+ 2\n" +
		"       \\------+ 1\n"
	assert.Equal(t, expected, buffer.String(), "wrong diagram")

	buffer.Reset()
	tree.Print(&buffer, true)
	assert.Contains(t, buffer.String(), "2 → v +0/h2/n3", "missing data")
}
