// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pvec - a growable vector of opaque item references, with
// stack operations working on the tail
//
// out of range indexes are reported as error returns, the caller
// can always recover
//
// Note: an individual vector is not thread safe, so either access
//       only in a single go routine or use mutex/rwmutex to
//       restrict access.
package pvec

import (
	"github.com/phkaeser/libbase-sub000/fault"
)

// Vector - an ordered collection of opaque items
type Vector struct {
	items []interface{}
}

// New - create an empty vector with room for capacity items
//
// a negative capacity is treated as zero
func New(capacity int) *Vector {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector{
		items: make([]interface{}, 0, capacity),
	}
}

// Count - number of items currently stored
func (v *Vector) Count() int {
	return len(v.items)
}

// IsEmpty - true if the vector holds no items
func (v *Vector) IsEmpty() bool {
	return 0 == len(v.items)
}

// Append - add an item behind the last one
func (v *Vector) Append(item interface{}) {
	v.items = append(v.items, item)
}

// Insert - add an item at index, shifting the tail up
//
// index may equal Count to append
func (v *Vector) Insert(index int, item interface{}) error {
	if index < 0 || index > len(v.items) {
		return fault.IndexOutOfRange
	}
	v.items = append(v.items, nil)
	copy(v.items[index+1:], v.items[index:])
	v.items[index] = item
	return nil
}

// Remove - take the item at index out, shifting the tail down
func (v *Vector) Remove(index int) (interface{}, error) {
	if index < 0 || index >= len(v.items) {
		return nil, fault.IndexOutOfRange
	}
	item := v.items[index]
	copy(v.items[index:], v.items[index+1:])
	v.items[len(v.items)-1] = nil // release the reference
	v.items = v.items[:len(v.items)-1]
	return item, nil
}

// At - read the item at index
func (v *Vector) At(index int) (interface{}, bool) {
	if index < 0 || index >= len(v.items) {
		return nil, false
	}
	return v.items[index], true
}

// Set - replace the item at index
func (v *Vector) Set(index int, item interface{}) error {
	if index < 0 || index >= len(v.items) {
		return fault.IndexOutOfRange
	}
	v.items[index] = item
	return nil
}

// Push - stack alias for Append
func (v *Vector) Push(item interface{}) {
	v.Append(item)
}

// Pop - take the last item off, false when empty
func (v *Vector) Pop() (interface{}, bool) {
	n := len(v.items)
	if 0 == n {
		return nil, false
	}
	item := v.items[n-1]
	v.items[n-1] = nil // release the reference
	v.items = v.items[:n-1]
	return item, true
}

// Top - read the last item without removing it, false when empty
func (v *Vector) Top() (interface{}, bool) {
	n := len(v.items)
	if 0 == n {
		return nil, false
	}
	return v.items[n-1], true
}

// Reset - drop all items, capacity is retained
func (v *Vector) Reset() {
	for i := range v.items {
		v.items[i] = nil // release the references
	}
	v.items = v.items[:0]
}

// Each - call fn with every index and item in order, stop early on
// false
func (v *Vector) Each(fn func(index int, item interface{}) bool) {
	for i := 0; i < len(v.items); i += 1 {
		if !fn(i, v.items[i]) {
			return
		}
	}
}
