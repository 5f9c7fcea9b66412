// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %p  expected: %p\n", p.item, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckBalance - recompute every sub-tree height and verify each
// balance factor
func (tree *Tree) CheckBalance() bool {
	_, ok := checkbalance(tree.root)
	return ok
}

// internal: returns sub-tree height and validity
func checkbalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, okl := checkbalance(p.left)
	hr, okr := checkbalance(p.right)
	if !okl || !okr {
		return 0, false
	}
	b := hr - hl
	if b < -1 || b > 1 || b != p.balance {
		fmt.Printf("fail at node: %v   balance: %+d  heights: left %d right %d\n", p.item, p.balance, hl, hr)
		return 0, false
	}
	if hr > hl {
		return 1 + hr, true
	}
	return 1 + hl, true
}

// CheckCount - verify the recorded count against the reachable nodes
func (tree *Tree) CheckCount() bool {
	n := census(tree.root)
	if n != tree.count {
		fmt.Printf("fail count: actual: %d  expected: %d\n", n, tree.count)
		return false
	}
	return true
}

// internal: census of a sub-tree
func census(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + census(p.left) + census(p.right)
}
