// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/phkaeser/libbase-sub000/fault"
)

// Insert - attach a caller supplied orphan node under key
//
// a key that is not yet present attaches the node as a leaf and
// returns true.  A present key either returns false leaving the
// tree unchanged (overwrite false), or splices the node into the
// old node's structural position and returns true (overwrite true);
// the superseded node is zeroed and handed to the destroy callback.
//
// the node count only changes when a leaf is attached
func (tree *Tree) Insert(key interface{}, node *Node, overwrite bool) bool {
	if nil == node {
		fault.Panic("avl.Insert: node is missing")
	}
	if !node.isOrphan() {
		fault.Panicf("avl.Insert: node %p is already linked", node)
	}
	root, old, added, _ := insert(tree.cmp, key, node, overwrite, tree.root)
	if !added && nil == old {
		return false // key present and overwrite not allowed
	}
	tree.root = root
	if added {
		tree.count += 1
	} else {
		old.reset()
		if nil != tree.destroy {
			tree.destroy(old)
		}
	}
	return true
}

// internal routine for insert
//
// returns the new sub-tree root, the superseded node on an
// overwrite, whether a leaf was attached and whether the sub-tree
// height has grown
func insert(cmp CompareFunc, key interface{}, node *Node, overwrite bool, p *Node) (*Node, *Node, bool, bool) {
	if nil == p { // attach as a new leaf
		return node, nil, true, true
	}
	old := (*Node)(nil)
	added := false
	h := false
	c := cmp(p, key)
	switch {
	case c > 0: // p key > key
		p.left, old, added, h = insert(cmp, key, node, overwrite, p.left)
		if h {
			if nil != p.left {
				p.left.up = p
			}

			// left branch has grown
			if 1 == p.balance {
				p.balance = 0
				h = false
			} else if 0 == p.balance {
				p.balance = -1
			} else { // balance == -1, rebalance
				p1 := p.left
				if -1 == p1.balance {
					// single LL rotation
					p.left = p1.right
					p1.right = p

					p.balance = 0

					p1.up = p.up
					p.up = p1
					if nil != p.left {
						p.left.up = p
					}

					p = p1
				} else {
					// double LR rotation
					p2 := p1.right
					p1.right = p2.left
					p2.left = p1
					p.left = p2.right
					p2.right = p
					if -1 == p2.balance {
						p.balance = 1
					} else {
						p.balance = 0
					}
					if +1 == p2.balance {
						p1.balance = -1
					} else {
						p1.balance = 0
					}

					if nil != p.left {
						p.left.up = p
					}
					if nil != p1.right {
						p1.right.up = p1
					}
					p2.up = p.up
					p.up = p2
					p1.up = p2

					p = p2
				}
				p.balance = 0
				h = false
			}
		}
	case c < 0: // p key < key
		p.right, old, added, h = insert(cmp, key, node, overwrite, p.right)
		if h {
			if nil != p.right {
				p.right.up = p
			}

			// right branch has grown
			if -1 == p.balance {
				p.balance = 0
				h = false
			} else if 0 == p.balance {
				p.balance = 1
			} else { // balance = +1, rebalance
				p1 := p.right
				if 1 == p1.balance {
					// single RR rotation
					p.right = p1.left
					p1.left = p

					p.balance = 0

					p1.up = p.up
					p.up = p1
					if nil != p.right {
						p.right.up = p
					}

					p = p1
				} else {
					// double RL rotation
					p2 := p1.left
					p1.left = p2.right
					p2.right = p1
					p.right = p2.left
					p2.left = p
					if +1 == p2.balance {
						p.balance = -1
					} else {
						p.balance = 0
					}
					if -1 == p2.balance {
						p1.balance = 1
					} else {
						p1.balance = 0
					}

					if nil != p.right {
						p.right.up = p
					}
					if nil != p1.left {
						p1.left.up = p1
					}
					p2.up = p.up
					p.up = p2
					p1.up = p2

					p = p2
				}
				p.balance = 0
				h = false
			}
		}
	default: // key already present
		if !overwrite {
			return p, nil, false, false
		}
		// splice node into p's exact position
		node.left = p.left
		node.right = p.right
		node.up = p.up
		node.balance = p.balance
		if nil != node.left {
			node.left.up = node
		}
		if nil != node.right {
			node.right.up = node
		}
		return node, p, false, false
	}
	return p, old, added, h
}
