// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package logsetup - diagnostics configuration for embedding programs
//
// wires the rotating log system and the fatal assertion channel up
// from one Configuration record, optionally read from a Lua
// configuration file.  A file watcher is provided so long running
// programs can react to configuration edits.
package logsetup
