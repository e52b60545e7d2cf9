// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
)

const (
	watcherLoggerPrefix = "watcher"
)

type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

// fileWatcher - signals changes to a single file
type fileWatcher struct {
	log      *logger.L
	channels watcherChannel
	watcher  *fsnotify.Watcher
	filePath string
	process  *background.T
}

func newFileWatcher(targetFile string, log *logger.L, channels watcherChannel) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		log.Errorf("file: %q  error: %s", filePath, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		channels: channels,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Start - watch the directory holding the file so editors that
// replace the file by rename are still followed
func (w *fileWatcher) Start() error {
	if nil == w.watcher {
		return fault.ErrWatcherNotInitialised
	}

	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	w.process = background.Start(background.Processes{w}, w.watcher)
	return nil
}

// Stop - end the background loop and release the watcher
func (w *fileWatcher) Stop() {
	if nil == w.watcher {
		return
	}
	w.process.Stop()
	w.watcher.Close()
	w.watcher = nil
}

// Run - forward events for the watched file until shutdown or removal
func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	watcher := args.(*fsnotify.Watcher)
	base := filepath.Base(w.filePath)
	for {
		select {
		case <-shutdown:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				// a rename-replace leaves the file present
				if _, err := os.Stat(w.filePath); nil == err {
					w.sendEvent(w.channels.change, "change")
					continue
				}
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.sendEvent(w.channels.remove, "remove")
				return
			}

			if watcherEventFileChange(event) {
				w.sendEvent(w.channels.change, "change")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}

// run a script, then run it again after every change until it is
// removed or the program is interrupted
func watchScript(fileName string, delay int, out io.Writer, log *logger.L, printData bool) error {
	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	w, err := newFileWatcher(fileName, logger.New(watcherLoggerPrefix), channels)
	if nil != err {
		return err
	}
	if err := w.Start(); nil != err {
		return err
	}
	defer w.Stop()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	runOnce := func() {
		if err := runScriptFile(fileName, out, log, printData); nil != err {
			log.Errorf("script: %q  error: %s", fileName, err)
			io.WriteString(out, "error: "+err.Error()+"\n")
		}
	}
	runOnce()

	debounce := time.Duration(delay) * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-channels.change:
			// editors write in bursts, wait for it to settle
			timer.Reset(debounce)

		case <-timer.C:
			log.Infof("script changed: %q", fileName)
			runOnce()

		case <-channels.remove:
			log.Warnf("script removed: %q", fileName)
			return nil

		case sig := <-sigs:
			log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
