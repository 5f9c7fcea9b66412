// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package set - an ordered set of opaque items
//
// built on the avl tree, ordering is delegated to a two item
// comparison callback supplied by the caller.  Iteration visits
// items in ascending comparison order.
//
// Note: an individual set is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
package set
