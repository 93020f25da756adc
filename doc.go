// Package bstree is a small, dependency-light home for an unbalanced
// binary search tree written in plain generic Go.
//
// What's inside:
//
//	bst/          — Tree and Node over any ordered key, duplicate-key policy,
//	                in/pre/post-order iterators, Height, MaxDegree, Min, Max,
//	                path-recording Find and a text diagram (Fprint)
//	cmd/bstdemo/  — command-line demo: build a tree from integer keys and print
//	                traversals, shape, search paths or the diagram
//
// The tree never rebalances and never deletes. Sorted input becomes a list
// and every walk over it is O(n) deep; that is the price of the shape, not
// an error.
//
// Quick ASCII example, keys 15 10 20 12 12:
//
//	    15
//	   /  \
//	 10    20
//	   \
//	    12
//	      \
//	       12   <- duplicates go right
//
//	go get github.com/katalvlaran/bstree/bst
package bstree
