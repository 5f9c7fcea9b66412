// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

import (
	"github.com/phkaeser/libbase-sub000/avl"
	"github.com/phkaeser/libbase-sub000/fault"
)

// CompareFunc - compare two stored items
//
// returns: > 0 when a is greater than b
//          < 0 when a is less than b
//            0 when both are equal
type CompareFunc func(a interface{}, b interface{}) int

// Set - an ordered collection of distinct items
type Set struct {
	tree *avl.Tree
	cmp  CompareFunc
}

// New - create an initially empty set
//
// the comparison function is required
func New(cmp CompareFunc) *Set {
	if nil == cmp {
		fault.Panic("set.New: comparison function is missing")
	}
	return &Set{
		tree: avl.New(
			func(node *avl.Node, key interface{}) int {
				return cmp(node.Item(), key)
			},
			nil,
		),
		cmp: cmp,
	}
}

// Count - number of items currently stored
func (s *Set) Count() int {
	return s.tree.Count()
}

// IsEmpty - true if the set holds no items
func (s *Set) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Add - store an item, false when an equal item is already present
func (s *Set) Add(item interface{}) bool {
	return s.tree.Insert(item, avl.NewNode(item), false)
}

// Replace - store an item, displacing any equal item already present
//
// always succeeds
func (s *Set) Replace(item interface{}) bool {
	return s.tree.Insert(item, avl.NewNode(item), true)
}

// Contains - true when an equal item is present
func (s *Set) Contains(item interface{}) bool {
	return nil != s.tree.Search(item)
}

// Get - return the stored item equal to item
//
// useful when equality covers only part of the item and the caller
// wants the stored rest
func (s *Set) Get(item interface{}) (interface{}, bool) {
	node := s.tree.Search(item)
	if nil == node {
		return nil, false
	}
	return node.Item(), true
}

// Remove - take the item equal to item out of the set
func (s *Set) Remove(item interface{}) (interface{}, bool) {
	node := s.tree.Delete(item)
	if nil == node {
		return nil, false
	}
	return node.Item(), true
}

// Min - the lowest stored item, false when empty
func (s *Set) Min() (interface{}, bool) {
	node := s.tree.First()
	if nil == node {
		return nil, false
	}
	return node.Item(), true
}

// Max - the highest stored item, false when empty
func (s *Set) Max() (interface{}, bool) {
	node := s.tree.Last()
	if nil == node {
		return nil, false
	}
	return node.Item(), true
}

// Each - call fn with every item in ascending order, stop early on
// false
func (s *Set) Each(fn func(item interface{}) bool) {
	for node := s.tree.First(); nil != node; node = s.tree.Next(node) {
		if !fn(node.Item()) {
			return
		}
	}
}

// Reset - drop all items
func (s *Set) Reset() {
	s.tree.Destroy()
}
