// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dlist - an intrusive doubly linked list
//
// nodes are supplied and owned by the caller, the list never
// allocates or releases them.  Each node records its owning list so
// linking a node twice, or unlinking it from the wrong list, is
// caught as a contract violation.
//
// Note: an individual list is not thread safe, so either access
//       only in a single go routine or use mutex/rwmutex to
//       restrict access.
package dlist

import (
	"github.com/phkaeser/libbase-sub000/fault"
)

// DestroyFunc - called with each node discarded by Destroy, links
// already zeroed so the enclosing record may be released
type DestroyFunc func(node *Node)

// Node - a node in a list
//
// storage is owned by the caller, a node must stay untouched while
// it is linked into a list
type Node struct {
	next *Node       // towards the back
	prev *Node       // towards the front
	list *List       // owning list, nil while orphaned
	item interface{} // opaque back reference to the caller's record
}

// List - holds the ends of a list
type List struct {
	head    *Node
	tail    *Node
	count   int
	destroy DestroyFunc
}

// New - create an initially empty list
//
// destroy may be nil if discarded nodes need no finalisation
func New(destroy DestroyFunc) *List {
	return &List{
		destroy: destroy,
	}
}

// NewNode - create an orphan node referencing the caller's record
func NewNode(item interface{}) *Node {
	return &Node{
		item: item,
	}
}

// Item - read the item back reference from a node
func (p *Node) Item() interface{} {
	return p.item
}

// Next - the following node, nil at the back of the list
func (p *Node) Next() *Node {
	if nil == p.list {
		fault.Panicf("dlist.Next: node %p is not on a list", p)
	}
	return p.next
}

// Prev - the preceding node, nil at the front of the list
func (p *Node) Prev() *Node {
	if nil == p.list {
		fault.Panicf("dlist.Prev: node %p is not on a list", p)
	}
	return p.prev
}

// IsEmpty - true if list contains no nodes
func (list *List) IsEmpty() bool {
	return nil == list.head
}

// Count - number of nodes currently on the list
func (list *List) Count() int {
	return list.count
}

// Front - the first node, nil when empty
func (list *List) Front() *Node {
	return list.head
}

// Back - the last node, nil when empty
func (list *List) Back() *Node {
	return list.tail
}

// internal: claim an orphan node for this list
func (list *List) claim(node *Node) {
	if nil == node {
		fault.Panic("dlist: node is missing")
	}
	if nil != node.list {
		fault.Panicf("dlist: node %p is already on a list", node)
	}
	node.list = list
	list.count += 1
}

// PushFront - link an orphan node at the front
func (list *List) PushFront(node *Node) {
	list.claim(node)
	node.prev = nil
	node.next = list.head
	if nil == list.head {
		list.tail = node
	} else {
		list.head.prev = node
	}
	list.head = node
}

// PushBack - link an orphan node at the back
func (list *List) PushBack(node *Node) {
	list.claim(node)
	node.next = nil
	node.prev = list.tail
	if nil == list.tail {
		list.head = node
	} else {
		list.tail.next = node
	}
	list.tail = node
}

// InsertBefore - link an orphan node just in front of at
func (list *List) InsertBefore(node *Node, at *Node) {
	if nil == at || at.list != list {
		fault.Panicf("dlist.InsertBefore: at %p is not on this list", at)
	}
	if nil == at.prev {
		list.PushFront(node)
		return
	}
	list.claim(node)
	node.prev = at.prev
	node.next = at
	at.prev.next = node
	at.prev = node
}

// InsertAfter - link an orphan node just behind at
func (list *List) InsertAfter(node *Node, at *Node) {
	if nil == at || at.list != list {
		fault.Panicf("dlist.InsertAfter: at %p is not on this list", at)
	}
	if nil == at.next {
		list.PushBack(node)
		return
	}
	list.claim(node)
	node.next = at.next
	node.prev = at
	at.next.prev = node
	at.next = node
}

// Remove - unlink a node and return it orphaned
//
// the destroy callback is NOT invoked
func (list *List) Remove(node *Node) *Node {
	if nil == node || node.list != list {
		fault.Panicf("dlist.Remove: node %p is not on this list", node)
	}
	if nil == node.prev {
		list.head = node.next
	} else {
		node.prev.next = node.next
	}
	if nil == node.next {
		list.tail = node.prev
	} else {
		node.next.prev = node.prev
	}
	node.next = nil
	node.prev = nil
	node.list = nil
	list.count -= 1
	return node
}

// PopFront - unlink and return the first node, nil when empty
func (list *List) PopFront() *Node {
	if nil == list.head {
		return nil
	}
	return list.Remove(list.head)
}

// PopBack - unlink and return the last node, nil when empty
func (list *List) PopBack() *Node {
	if nil == list.tail {
		return nil
	}
	return list.Remove(list.tail)
}

// Each - call fn on every node front to back, stop early on false
//
// the current node may be removed by fn, the walk continues from
// the saved successor
func (list *List) Each(fn func(node *Node) bool) {
	p := list.head
	for nil != p {
		next := p.next
		if !fn(p) {
			return
		}
		p = next
	}
}

// Destroy - unlink every node and reset the list to empty
//
// nodes are visited front to back, each is zeroed and then handed
// to the destroy callback.  The list stays usable afterwards
func (list *List) Destroy() {
	p := list.head
	for nil != p {
		next := p.next
		p.next = nil
		p.prev = nil
		p.list = nil
		if nil != list.destroy {
			list.destroy(p)
		}
		p = next
	}
	list.head = nil
	list.tail = nil
	list.count = 0
}
