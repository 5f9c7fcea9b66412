// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logsetup

import (
	"os"
	"path"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/phkaeser/libbase-sub000/fault"
)

// Watcher - watches one configuration file for edits
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	onChange func()
	started  bool
}

// Watch - set up a watcher on an existing file
//
// onChange runs on the watcher go routine for every write to the
// file; removing the file stops the watcher
func Watch(fileName string, onChange func(), log *logger.L) (*Watcher, error) {
	if "" == fileName || nil == onChange || nil == log {
		return nil, fault.InvalidParameter
	}

	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		log.Errorf("parse file: %s error: %s", fileName, err)
		return nil, err
	}
	if _, err := os.Stat(filePath); nil != err {
		return nil, fault.UnknownName
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		onChange: onChange,
	}, nil
}

// Start - begin delivering change call backs
func (w *Watcher) Start() error {
	if w.started {
		return fault.AlreadyInitialised
	}

	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}
	w.started = true

	go func() {
		for event := range w.watcher.Events {
			w.log.Infof("file event: %v", event)

			if "" == event.Name || fsnotify.Remove == event.Op&fsnotify.Remove {
				w.log.Warnf("file: %s removed, stop", w.filePath)
				return
			}

			if path.Base(event.Name) != path.Base(w.filePath) {
				continue
			}

			if 0 != event.Op&(fsnotify.Write|fsnotify.Chmod) {
				w.log.Debug("sending configuration change event")
				w.onChange()
			}
		}
	}()

	return nil
}

// Stop - drop the watch and end the call back go routine
func (w *Watcher) Stop() {
	_ = w.watcher.Close()
}
