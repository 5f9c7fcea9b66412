// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node whose key matches
//
// returns nil when the key is not present
func (tree *Tree) Search(key interface{}) *Node {
	return search(tree.cmp, key, tree.root)
}

// internal routine for search
func search(cmp CompareFunc, key interface{}, p *Node) *Node {
	if nil == p {
		return nil
	}

	c := cmp(p, key)
	switch {
	case c > 0: // p key > key
		return search(cmp, key, p.left)
	case c < 0: // p key < key
		return search(cmp, key, p.right)
	default:
		return p
	}
}
