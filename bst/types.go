// Package bst defines the node and tree types, the duplicate-key policy,
// traversal orders, functional options and sentinel errors of the
// unbalanced binary search tree.
package bst

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the bst package.
var (
	// ErrBadDuplicateRoute is returned by New when WithDuplicateRoute
	// was given a value other than Right or Left.
	ErrBadDuplicateRoute = errors.New("bst: invalid duplicate route")

	// ErrNilWriter is returned by Fprint when the destination writer is nil.
	ErrNilWriter = errors.New("bst: writer is nil")
)

// DuplicateRoute names the subtree a key equal to an existing node's key
// descends into on Insert. Duplicates are never rejected or counted.
type DuplicateRoute uint8

const (
	// Right routes duplicates into the right subtree (default).
	// Invariant: left keys < v.key <= right keys.
	Right DuplicateRoute = iota

	// Left routes duplicates into the left subtree.
	// Invariant: left keys <= v.key < right keys.
	Left
)

// String returns "right", "left" or "invalid".
func (r DuplicateRoute) String() string {
	switch r {
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "invalid"
	}
}

// Order selects a depth-first traversal order.
type Order uint8

const (
	InOrder   Order = iota // left, key, right
	PreOrder               // key, left, right
	PostOrder              // left, right, key
)

// String returns "inorder", "preorder", "postorder" or "invalid".
func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	default:
		return "invalid"
	}
}

// Node is a single tree node. Its children are owned exclusively by it;
// callers may read a Node but only Tree.Insert attaches children.
type Node[K constraints.Ordered] struct {
	key   K
	left  *Node[K]
	right *Node[K]
}

// Key returns the key stored in n.
func (n *Node[K]) Key() K { return n.key }

// Left returns the left child, or nil.
func (n *Node[K]) Left() *Node[K] { return n.left }

// Right returns the right child, or nil.
func (n *Node[K]) Right() *Node[K] { return n.right }

// Degree returns the number of present children of n (0, 1 or 2).
func (n *Node[K]) Degree() int {
	d := 0
	if n.left != nil {
		d++
	}
	if n.right != nil {
		d++
	}

	return d
}

// Tree is an unbalanced binary search tree keyed by K.
//
// The zero value is an empty tree routing duplicates Right.
// A Tree is not safe for concurrent mutation; readers may run
// concurrently with each other as long as no Insert is in flight.
type Tree[K constraints.Ordered] struct {
	root  *Node[K]       // nil when empty
	size  int            // number of nodes
	route DuplicateRoute // duplicate policy
}

// Option configures a Tree built by New.
type Option func(*Options)

// Options holds the construction parameters of a Tree.
type Options struct {
	// Route is the duplicate-key policy. Default is Right.
	Route DuplicateRoute

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with duplicates routed Right.
func DefaultOptions() Options {
	return Options{
		Route: Right,
		err:   nil,
	}
}

// WithDuplicateRoute sets the duplicate-key policy. Values other than
// Right and Left are recorded and surfaced as ErrBadDuplicateRoute by New.
func WithDuplicateRoute(r DuplicateRoute) Option {
	return func(o *Options) {
		if r != Right && r != Left {
			o.err = ErrBadDuplicateRoute
			return
		}
		o.Route = r
	}
}
