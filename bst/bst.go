// Package bst implements insertion, lookup and structural queries on Tree.
//
// Every operation is a plain recursive walk from the root. Nothing is
// cached: Height and MaxDegree recompute over the whole tree on each call.
//
// Complexity:
//
//   - Insert, Find, Contains, Min, Max: Time O(h), Memory O(h)
//   - Height, MaxDegree:                Time O(n), Memory O(h)
//
// where h is the tree height, which is n-1 for sorted input.
package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// New returns an empty Tree configured by opts.
// It fails only with ErrBadDuplicateRoute.
func New[K constraints.Ordered](opts ...Option) (*Tree[K], error) {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("bst: New: %w", o.err)
	}

	return &Tree[K]{route: o.Route}, nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] { return t.root }

// Len returns the number of nodes, duplicates included.
func (t *Tree[K]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no nodes.
func (t *Tree[K]) IsEmpty() bool { return t.root == nil }

// Policy returns the duplicate-key policy of t.
func (t *Tree[K]) Policy() DuplicateRoute { return t.route }

// Insert adds key as a new leaf and returns the (possibly unchanged) root.
// A key equal to an existing one descends to the side named by Policy.
// Insert never fails and always grows the tree by exactly one node.
func (t *Tree[K]) Insert(key K) *Node[K] {
	t.root = t.insert(t.root, key)
	t.size++

	return t.root
}

// InsertAll inserts keys in order and returns the root.
func (t *Tree[K]) InsertAll(keys ...K) *Node[K] {
	for _, k := range keys {
		t.Insert(k)
	}

	return t.root
}

func (t *Tree[K]) insert(n *Node[K], key K) *Node[K] {
	if n == nil {
		return &Node[K]{key: key}
	}
	switch {
	case key < n.key:
		n.left = t.insert(n.left, key)
	case key > n.key:
		n.right = t.insert(n.right, key)
	case t.route == Left:
		n.left = t.insert(n.left, key)
	default:
		n.right = t.insert(n.right, key)
	}

	return n
}

// Find searches for key from the root and records every visited key.
// It reports whether key was found and the visited keys in order; on a
// hit the last path element is key. The path is never nil.
//
// With duplicates in the tree, Find stops at the shallowest node holding
// key, which is the first one inserted.
func (t *Tree[K]) Find(key K) (bool, []K) {
	path := make([]K, 0, 8)
	found := false
	for n := t.root; n != nil; {
		path = append(path, n.key)
		if key == n.key {
			found = true
			break
		}
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}

	return found, path
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K]) Contains(key K) bool {
	for n := t.root; n != nil; {
		switch {
		case key == n.key:
			return true
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}

	return false
}

// Min returns the smallest key, or false on an empty tree.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, true
}

// Max returns the largest key, or false on an empty tree.
// Under the Right policy this is the most recently inserted copy
// of the largest key.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, true
}

// Height returns -1 for an empty tree, 0 for a single node and
// 1 + max(height(left), height(right)) otherwise.
func (t *Tree[K]) Height() int {
	return height(t.root)
}

func height[K constraints.Ordered](n *Node[K]) int {
	if n == nil {
		return -1
	}

	return 1 + max(height(n.left), height(n.right))
}

// MaxDegree returns the largest number of present children at any node.
// It is 0 for an empty or single-node tree and at most 2.
func (t *Tree[K]) MaxDegree() int {
	return maxDegree(t.root)
}

func maxDegree[K constraints.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}

	return max(n.Degree(), maxDegree(n.left), maxDegree(n.right))
}
