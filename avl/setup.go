// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/phkaeser/libbase-sub000/fault"
)

// CompareFunc - compare the key embedded in a node's item with a
// probe key
//
// returns: > 0 when the node key is greater than the probe key
//          < 0 when the node key is less than the probe key
//            0 when both are equal
//
// the same function is used by search, insert and delete so the
// ordering is uniform across all operations
type CompareFunc func(node *Node, key interface{}) int

// DestroyFunc - called with a node the tree has discarded, either
// superseded by an overwriting insert or torn down by Destroy
//
// the node links are already zeroed when the callback runs, so the
// enclosing record may be released
type DestroyFunc func(node *Node)

// Node - a node in the tree
//
// storage is owned by the caller, a node must stay untouched while
// it is linked into a tree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	up      *Node       // points to parent node
	item    interface{} // opaque back reference to the caller's record
	balance int         // -1, 0, +1
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root    *Node
	count   int
	cmp     CompareFunc
	destroy DestroyFunc
}

// New - create an initially empty tree
//
// the comparison function is required, destroy may be nil if
// discarded nodes need no finalisation
func New(cmp CompareFunc, destroy DestroyFunc) *Tree {
	if nil == cmp {
		fault.Panic("avl.New: comparison function is missing")
	}
	return &Tree{
		root:    nil,
		count:   0,
		cmp:     cmp,
		destroy: destroy,
	}
}

// NewNode - create an orphan node referencing the caller's record
//
// callers embedding Node in their own struct can skip this and pass
// the embedded node directly
func NewNode(item interface{}) *Node {
	return &Node{
		item: item,
	}
}

// IsEmpty - true if tree contains no nodes
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Item - read the item back reference from a node
func (p *Node) Item() interface{} {
	return p.item
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Balance - height of the right sub-tree minus height of the left
// sub-tree, one of -1, 0, +1
func (p *Node) Balance() int {
	return p.balance
}

// internal: true if the node has no links into any tree
func (p *Node) isOrphan() bool {
	return nil == p.up && nil == p.left && nil == p.right && 0 == p.balance
}

// internal: reset a detached node back to orphan state
func (p *Node) reset() {
	p.left = nil
	p.right = nil
	p.up = nil
	p.balance = 0
}
