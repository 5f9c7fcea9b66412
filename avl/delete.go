// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// delete: tree balancer
func balanceLeft(pp **Node) bool {
	h := true
	p := *pp
	// h; left branch has shrunk
	if -1 == p.balance {
		p.balance = 0
	} else if 0 == p.balance {
		p.balance = 1
		h = false
	} else { // balance = 1, rebalance
		p1 := p.right
		if p1.balance >= 0 {
			// single RR rotation
			p.right = p1.left
			p1.left = p
			if 0 == p1.balance {
				p.balance = 1
				p1.balance = -1
				h = false
			} else {
				p.balance = 0
				p1.balance = 0
			}

			p1.up = p.up
			p.up = p1
			if nil != p.right {
				p.right.up = p
			}

			*pp = p1
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
			p2.balance = 0

			p2.up = p.up
			if nil != p.right {
				p.right.up = p
			}
			if nil != p1.left {
				p1.left.up = p1
			}
			p.up = p2
			p1.up = p2

			*pp = p2
		}
	}
	return h
}

// delete: tree balancer
func balanceRight(pp **Node) bool {
	h := true
	p := *pp
	// h; right branch has shrunk
	if 1 == p.balance {
		p.balance = 0
	} else if 0 == p.balance {
		p.balance = -1
		h = false
	} else { // balance = -1, rebalance
		p1 := p.left
		if p1.balance <= 0 {
			// single LL rotation
			p.left = p1.right
			p1.right = p
			if 0 == p1.balance {
				p.balance = -1
				p1.balance = 1
				h = false
			} else {
				p.balance = 0
				p1.balance = 0
			}

			p1.up = p.up
			p.up = p1
			if nil != p.left {
				p.left.up = p
			}

			*pp = p1
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
			p2.balance = 0

			p2.up = p.up
			if nil != p.left {
				p.left.up = p
			}
			if nil != p1.right {
				p1.right.up = p1
			}
			p.up = p2
			p1.up = p2

			*pp = p2
		}
	}
	return h
}

// delete: relink the in-order successor into the deleted node's place
//
// qq is the link holding the node being deleted, rr walks to the
// leftmost node of its right sub-tree.  The successor is lifted out
// by pointer exchange only, its enclosing record never moves
func exchange(qq **Node, rr **Node) bool {
	h := false
	if nil != (*rr).left {
		h = exchange(qq, &(*rr).left)
		if h {
			h = balanceLeft(rr)
		}
	} else {
		q := *qq
		r := *rr
		rc := r.right // successor has no left child, its right child moves up
		if nil != rc {
			rc.up = r.up
		}

		if r != q.right {
			r.right = q.right
		}
		r.left = q.left
		r.up = q.up
		r.balance = q.balance

		if nil != r.right {
			r.right.up = r
		}
		if nil != r.left {
			r.left.up = r
		}

		*qq = r
		*rr = rc

		h = true
	}
	return h
}

// Delete - detach the node whose key matches and return it
//
// returns nil when the key is not present, the tree is untouched.
// The detached node comes back with all links zeroed ready for
// reuse, the destroy callback is NOT invoked
func (tree *Tree) Delete(key interface{}) *Node {
	node, removed, _ := delete(tree.cmp, key, &tree.root)
	if !removed {
		return nil
	}
	tree.count -= 1
	node.reset()
	return node
}

// internal delete routine
func delete(cmp CompareFunc, key interface{}, pp **Node) (*Node, bool, bool) {
	h := false
	if nil == *pp { // key not in tree
		return nil, false, h
	}
	node := (*Node)(nil)
	removed := false
	c := cmp(*pp, key)
	switch {
	case c > 0: // (*pp) key > key
		node, removed, h = delete(cmp, key, &(*pp).left)
		if h {
			h = balanceLeft(pp)
		}
	case c < 0: // (*pp) key < key
		node, removed, h = delete(cmp, key, &(*pp).right)
		if h {
			h = balanceRight(pp)
		}
	default: // found: detach q
		q := *pp
		if nil == q.right {
			if nil != q.left {
				q.left.up = q.up
			}
			*pp = q.left
			h = true
		} else if nil == q.left {
			q.right.up = q.up
			*pp = q.right
			h = true
		} else {
			h = exchange(pp, &q.right)
			(*pp).right = q.right // successor installed, q.right tracked any rebalance below it
			if h {
				h = balanceRight(pp)
			}
		}
		node = q
		removed = true
	}
	return node, removed, h
}
