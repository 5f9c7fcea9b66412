// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proc - synchronous subprocess execution
//
// a Command describes one program run: working directory,
// environment and an optional timeout that kills the process.
// Output is captured separately for stdout and stderr, a non zero
// exit status is data for the caller and never an error.
//
// the logger must be initialised before the first Command is
// created, every run is traced on the "proc" channel.
package proc
