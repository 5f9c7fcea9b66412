// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/phkaeser/libbase-sub000/fault"
)

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node in the tree, return the node with the next
// highest key value or nil if no more nodes
//
// keys are not stored in the nodes so this walks the structure,
// no comparisons are made
func (tree *Tree) Next(node *Node) *Node {
	if nil == node.up && node != tree.root {
		fault.Panicf("avl.Next: node %p is not in the tree", node)
	}
	if nil != node.right {
		return node.right.first()
	}
	p := node
	for nil != p.up && p == p.up.right {
		p = p.up
	}
	return p.up
}

// Prev - given a node in the tree, return the node with the next
// lowest key value or nil if no more nodes
func (tree *Tree) Prev(node *Node) *Node {
	if nil == node.up && node != tree.root {
		fault.Panicf("avl.Prev: node %p is not in the tree", node)
	}
	if nil != node.left {
		return node.left.last()
	}
	p := node
	for nil != p.up && p == p.up.left {
		p = p.up
	}
	return p.up
}
