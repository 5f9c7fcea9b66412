// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Destroy - detach every node and reset the tree to empty
//
// nodes are visited children first, each is zeroed and then handed
// to the destroy callback so the enclosing record can be released.
// The tree stays usable afterwards
func (tree *Tree) Destroy() {
	destroyAll(tree.root, tree.destroy)
	tree.root = nil
	tree.count = 0
}

// internal: post-order teardown
func destroyAll(p *Node, destroy DestroyFunc) {
	if nil == p {
		return
	}
	destroyAll(p.left, destroy)
	destroyAll(p.right, destroy)
	p.reset()
	if nil != destroy {
		destroy(p)
	}
}
