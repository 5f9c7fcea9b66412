// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// describe renders a node's item for the listing and may be nil to
// show structure and balance only.  Returns the maximum depth
func (tree *Tree) Print(describe func(*Node) string) int {
	return printTree(tree.root, "", root, describe)
}

// internal print - returns the maximum depth of the tree
func printTree(p *Node, prefix string, br branch, describe func(*Node) string) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(p.right, prefix+t, right, describe)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	if nil == describe {
		fmt.Printf("%+2d\n", p.balance)
	} else {
		fmt.Printf("%s %+2d\n", describe(p), p.balance)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(p.left, prefix+t, left, describe)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
