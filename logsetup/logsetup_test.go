// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logsetup_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/phkaeser/libbase-sub000/fault"
	"github.com/phkaeser/libbase-sub000/logsetup"
)

const (
	testingDirName = "testing"
)

func testConfiguration() logsetup.Configuration {
	cfg := logsetup.DefaultConfiguration()
	cfg.Directory = testingDirName
	cfg.File = "testing.log"
	return cfg
}

func setup(t *testing.T) {
	_ = os.RemoveAll(testingDirName)
	err := os.Mkdir(testingDirName, 0700)
	assert.Nil(t, err, "wrong mkdir")

	err = logsetup.Initialise(testConfiguration())
	assert.Nil(t, err, "wrong initialise")
}

func teardown(t *testing.T) {
	err := logsetup.Finalise()
	assert.Nil(t, err, "wrong finalise")
	_ = os.RemoveAll(testingDirName)
}

func TestInitialiseValidation(t *testing.T) {
	cfg := testConfiguration()
	cfg.Directory = ""
	err := logsetup.Initialise(cfg)
	assert.Equal(t, fault.RequiredLogDirectory, err, "wrong error")

	cfg = testConfiguration()
	cfg.File = ""
	err = logsetup.Initialise(cfg)
	assert.Equal(t, fault.RequiredLogFile, err, "wrong error")
}

func TestInitialiseCycle(t *testing.T) {
	setup(t)

	err := logsetup.Initialise(testConfiguration())
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong error")

	// the assertion channel has to be live now
	fault.Criticalf("diagnostic output test: %d", 1)

	teardown(t)

	err = logsetup.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "wrong error")
}

func TestDefaultConfiguration(t *testing.T) {
	cfg := logsetup.DefaultConfiguration()
	assert.Equal(t, "log", cfg.Directory, "wrong directory")
	assert.Equal(t, "diagnostics.log", cfg.File, "wrong file")
	assert.True(t, cfg.Size > 0, "wrong size")
	assert.True(t, cfg.Count > 0, "wrong count")
	assert.Equal(t, "critical", cfg.Levels[logger.DefaultTag], "wrong level")
}

func TestParseFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "logsetup-test")
	assert.Nil(t, err, "wrong temp dir")
	defer os.RemoveAll(dir)

	script := `
local M = {}
M.directory = "run/log"
M.file = arg[0] .. ".log"
M.size = 65536
M.count = 5
M.console = true
M.levels = {
    DEFAULT = "info",
    proc = "debug",
}
return M
`
	fileName := filepath.Join(dir, "diagnostics.lua")
	err = ioutil.WriteFile(fileName, []byte(script), 0600)
	assert.Nil(t, err, "wrong write")

	cfg := logsetup.Configuration{}
	err = logsetup.ParseFile(fileName, &cfg)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, "run/log", cfg.Directory, "wrong directory")
	assert.Equal(t, fileName+".log", cfg.File, "wrong file")
	assert.Equal(t, 65536, cfg.Size, "wrong size")
	assert.Equal(t, 5, cfg.Count, "wrong count")
	assert.True(t, cfg.Console, "wrong console")
	assert.Equal(t, "info", cfg.Levels["DEFAULT"], "wrong default level")
	assert.Equal(t, "debug", cfg.Levels["proc"], "wrong proc level")
}

func TestParseFileErrors(t *testing.T) {
	cfg := logsetup.Configuration{}

	err := logsetup.ParseFile("", &cfg)
	assert.Equal(t, fault.InvalidParameter, err, "wrong error")

	err = logsetup.ParseFile("no-such-file.lua", &cfg)
	assert.NotNil(t, err, "missing error")

	dir, err := ioutil.TempDir("", "logsetup-test")
	assert.Nil(t, err, "wrong temp dir")
	defer os.RemoveAll(dir)

	// a script that does not end in a table
	fileName := filepath.Join(dir, "broken.lua")
	err = ioutil.WriteFile(fileName, []byte(`return 42`), 0600)
	assert.Nil(t, err, "wrong write")

	err = logsetup.ParseFile(fileName, &cfg)
	assert.Equal(t, fault.InvalidValue, err, "wrong error")
}

func TestWatcher(t *testing.T) {
	setup(t)
	defer teardown(t)

	dir, err := ioutil.TempDir("", "logsetup-test")
	assert.Nil(t, err, "wrong temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "watched.lua")
	err = ioutil.WriteFile(fileName, []byte("return {}"), 0600)
	assert.Nil(t, err, "wrong write")

	changed := make(chan struct{}, 10)
	w, err := logsetup.Watch(
		fileName,
		func() { changed <- struct{}{} },
		logger.New("watcher"),
	)
	assert.Nil(t, err, "wrong watch")

	err = w.Start()
	assert.Nil(t, err, "wrong start")
	defer w.Stop()

	err = ioutil.WriteFile(fileName, []byte("return { size = 1 }"), 0600)
	assert.Nil(t, err, "wrong write")

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		assert.Fail(t, "no change event")
	}
}

func TestWatcherValidation(t *testing.T) {
	setup(t)
	defer teardown(t)

	log := logger.New("watcher")

	_, err := logsetup.Watch("no-such-file.lua", func() {}, log)
	assert.Equal(t, fault.UnknownName, err, "wrong error")

	_, err = logsetup.Watch("", func() {}, log)
	assert.Equal(t, fault.InvalidParameter, err, "wrong error")

	_, err = logsetup.Watch("no-such-file.lua", nil, log)
	assert.Equal(t, fault.InvalidParameter, err, "wrong error")
}
