// Package bst provides the depth-first traversals of Tree, both as lazy
// iter.Seq sequences and as materialized key slices.
//
// Each traversal visits exactly Len() keys in Time O(n), Memory O(h).
// Traversals never mutate the tree; the tree must not be modified while
// a sequence is being consumed.
package bst

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Inorder returns a sequence of keys in left, key, right order.
// Keys come out non-decreasing.
func (t *Tree[K]) Inorder() iter.Seq[K] { return t.seq(InOrder) }

// Preorder returns a sequence of keys in key, left, right order.
func (t *Tree[K]) Preorder() iter.Seq[K] { return t.seq(PreOrder) }

// Postorder returns a sequence of keys in left, right, key order.
func (t *Tree[K]) Postorder() iter.Seq[K] { return t.seq(PostOrder) }

// InorderKeys returns all keys in in-order.
func (t *Tree[K]) InorderKeys() []K { return t.Keys(InOrder) }

// PreorderKeys returns all keys in pre-order.
func (t *Tree[K]) PreorderKeys() []K { return t.Keys(PreOrder) }

// PostorderKeys returns all keys in post-order.
func (t *Tree[K]) PostorderKeys() []K { return t.Keys(PostOrder) }

// Keys returns all keys in the given order. The result is never nil;
// an unknown order yields an empty slice.
func (t *Tree[K]) Keys(order Order) []K {
	out := make([]K, 0, t.size)
	t.Walk(order, func(k K) bool {
		out = append(out, k)
		return true
	})

	return out
}

// Walk calls fn for each key in the given order until fn returns false.
// An unknown order visits nothing.
func (t *Tree[K]) Walk(order Order, fn func(K) bool) {
	switch order {
	case InOrder:
		inorderRec(t.root, fn)
	case PreOrder:
		preorderRec(t.root, fn)
	case PostOrder:
		postorderRec(t.root, fn)
	}
}

func (t *Tree[K]) seq(order Order) iter.Seq[K] {
	return func(yield func(K) bool) {
		t.Walk(order, yield)
	}
}

// The *Rec walkers return false as soon as yield did, to unwind early.

func inorderRec[K constraints.Ordered](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}

	return inorderRec(n.left, yield) && yield(n.key) && inorderRec(n.right, yield)
}

func preorderRec[K constraints.Ordered](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}

	return yield(n.key) && preorderRec(n.left, yield) && preorderRec(n.right, yield)
}

func postorderRec[K constraints.Ordered](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}

	return postorderRec(n.left, yield) && postorderRec(n.right, yield) && yield(n.key)
}
