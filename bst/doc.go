// Package bst implements an unbalanced binary search tree over any
// ordered key type, with an explicit duplicate-key policy, three
// depth-first traversals, structural queries and path-recording lookup.
//
// What:
//
//   - Insert: attaches every key as a new leaf. Keys less than a node go
//     left, greater go right, and equal keys follow the DuplicateRoute
//     policy (Right by default). Duplicates are never rejected, so Len()
//     grows by one per call.
//   - Traversals: Inorder, Preorder, Postorder as lazy iter.Seq values,
//     InorderKeys, PreorderKeys, PostorderKeys as slices, and Walk for
//     callback-style early exit.
//   - Queries: Height (-1 for empty), MaxDegree (0 for empty), Min, Max.
//   - Find: returns whether a key exists and the keys visited on the way,
//     root first. On duplicates the shallowest match wins.
//   - Fprint / String: a hierarchical text diagram; FormatPath renders a
//     key slice as "a --> b --> NULL".
//
// No balancing is performed: sorted input degenerates the tree into a
// list, and the recursive walks then need O(n) stack. This is a cost of
// the shape, not an error condition, so no depth limit is enforced.
// There is no deletion.
//
// Key Types & Constants:
//
//   - Tree[K], Node[K] with K constrained by constraints.Ordered
//   - DuplicateRoute: Right, Left
//   - Order: InOrder, PreOrder, PostOrder
//   - Option, Options, DefaultOptions, WithDuplicateRoute
//
// Complexity:
//
//   - Insert, Find, Min, Max:          Time O(h), Memory O(h)
//   - Traversals, Height, MaxDegree:   Time O(n), Memory O(h)
//
// Errors:
//
//   - ErrBadDuplicateRoute   New received an unknown DuplicateRoute
//   - ErrNilWriter           Fprint received a nil io.Writer
//
// Floating-point keys must not be NaN: NaN breaks the total order that
// every invariant relies on.
//
// Concurrency: a Tree is meant for a single owner. Concurrent Insert
// calls, or Insert concurrent with any read, must be serialized by the
// caller, e.g. with one sync.Mutex per tree.
package bst
