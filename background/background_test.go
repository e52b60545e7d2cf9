// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
)

type filler struct {
	tree  *avl.Tree[int, int]
	first int
	final int
}

func TestBackground(t *testing.T) {

	proc1 := &filler{tree: avl.New[int, int](), first: 0}
	proc2 := &filler{tree: avl.New[int, int](), first: 1000000}

	// list of background processes to start
	var processes = background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()
	p.Stop()

	for i, proc := range []*filler{proc1, proc2} {
		if proc.final != proc.tree.Count() {
			t.Fatalf("%d: stop failed: final count: %d  actual: %d", i, proc.final, proc.tree.Count())
		}
		if 0 == proc.final {
			t.Fatalf("%d: process did not run", i)
		}
		if err := proc.tree.Check(); nil != err {
			t.Fatalf("%d: inconsistent: %s", i, err)
		}
	}
}

func TestEarlyReturn(t *testing.T) {
	p := background.Start(background.Processes{returner{}}, nil)
	time.Sleep(10 * time.Millisecond)
	p.Stop()
}

type returner struct{}

func (returner) Run(args interface{}, shutdown <-chan struct{}) {}

func (state *filler) Run(args interface{}, shutdown <-chan struct{}) {

	t := args.(*testing.T)

	key := state.first
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.tree.Insert(key, key)
		key += 1
		time.Sleep(time.Millisecond)
	}

	// only visible after Stop returns
	state.final = key - state.first
	t.Logf("inserted: %d", state.final)
}
