// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// This version is intrusive: nodes are supplied and owned by the
// caller, the tree never allocates or releases them.  Keys are not
// stored in the node, ordering is delegated to a comparison callback
// that reads the key out of the caller's enclosing record.  An
// insert with an already present key can either be rejected or
// splice the new node into the old node's place.  Delete relinks
// nodes and never copies data around, so surrounding nodes stay
// valid during iteration.
package avl
