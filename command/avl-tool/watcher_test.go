// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func TestWatcherEventClassification(t *testing.T) {
	assert.True(t, watcherEventFileChange(fsnotify.Event{Op: fsnotify.Write}), "write")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Op: fsnotify.Create}), "create")
	assert.False(t, watcherEventFileChange(fsnotify.Event{Op: fsnotify.Remove}), "remove")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Op: fsnotify.Remove}), "remove")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Op: fsnotify.Rename}), "rename")
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Op: fsnotify.Write}), "write")
}

func TestWatcherMissingFile(t *testing.T) {
	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	_, err := newFileWatcher(filepath.Join(testingDirName, "none.txt"), logger.New("test"), channels)
	assert.NotNil(t, err, "missing file accepted")

	w := &fileWatcher{log: logger.New("test")}
	assert.Equal(t, fault.ErrWatcherNotInitialised, w.Start(), "uninitialised watcher started")
}

func TestWatcherSignals(t *testing.T) {
	fileName := filepath.Join(testingDirName, "watched.txt")
	require.Nil(t, ioutil.WriteFile(fileName, []byte("count\n"), 0600), "write file")

	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	w, err := newFileWatcher(fileName, logger.New("test"), channels)
	require.Nil(t, err, "new watcher")
	require.Nil(t, w.Start(), "start watcher")
	defer w.Stop()

	require.Nil(t, ioutil.WriteFile(fileName, []byte("count\ncount\n"), 0600), "rewrite file")
	select {
	case <-channels.change:
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	require.Nil(t, os.Remove(fileName), "remove file")
	select {
	case <-channels.remove:
	case <-time.After(5 * time.Second):
		t.Fatal("no remove event")
	}
}
