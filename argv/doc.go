// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package argv - typed command line option definitions and parsing
//
// callers declare options with a name, a description, a default and
// a destination pointer, then hand an input slice to a parser.  The
// registered names are kept in an avl tree which doubles as the
// duplicate definition detector.
//
// this is a library module: no process arguments are read and no
// exit is ever taken, the embedding program owns both.
package argv
