// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logsetup

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/phkaeser/libbase-sub000/fault"
)

// Configuration - all settings for the log system
type Configuration struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Size      int               `gluamapper:"size"`
	Count     int               `gluamapper:"count"`
	Console   bool              `gluamapper:"console"`
	Levels    map[string]string `gluamapper:"levels"`
}

// DefaultConfiguration - a single directory, critical only setup
func DefaultConfiguration() Configuration {
	return Configuration{
		Directory: "log",
		File:      "diagnostics.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
}

// to keep initialisation symmetric
type globalDataType struct {
	sync.Mutex
	initialised bool
}

var globalData globalDataType

// Initialise - validate a configuration and start the log system
//
// also attaches the fatal assertion channel, so a successful call
// makes the whole library fully diagnosable
func Initialise(cfg Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if "" == cfg.Directory {
		return fault.RequiredLogDirectory
	}
	if "" == cfg.File {
		return fault.RequiredLogFile
	}

	err := logger.Initialise(logger.Configuration{
		Directory: cfg.Directory,
		File:      cfg.File,
		Size:      cfg.Size,
		Count:     cfg.Count,
		Console:   cfg.Console,
		Levels:    cfg.Levels,
	})
	if nil != err {
		return err
	}

	err = fault.Initialise()
	if nil != err {
		logger.Finalise()
		return err
	}

	globalData.initialised = true
	return nil
}

// Finalise - flush and stop the log system
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	fault.Finalise()
	logger.Finalise()
	globalData.initialised = false
	return nil
}
