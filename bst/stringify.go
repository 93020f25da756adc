package bst

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// arrowSep and arrowEnd render key sequences the way the demo prints
// traversals and search paths.
const (
	arrowSep = " --> "
	arrowEnd = "NULL"
)

// FormatPath joins keys as "k1 --> k2 --> NULL". An empty slice
// renders as "NULL".
func FormatPath[K constraints.Ordered](keys []K) string {
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprint(&sb, k)
		sb.WriteString(arrowSep)
	}
	sb.WriteString(arrowEnd)

	return sb.String()
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Tree.Fprint].
func (t *Tree[K]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns the hierarchical diagram written by [Tree.Fprint].
// If Fprint returns an error, String panics.
func (t *Tree[K]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical diagram of the tree to w, root first,
// one node per line. Each child line is tagged L: or R: so a lone
// child's side is visible. An empty tree writes nothing.
//
//	15
//	├─ L: 10
//	│  └─ R: 12
//	└─ R: 20
func (t *Tree[K]) Fprint(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	if t.root == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w, t.root.key); err != nil {
		return fmt.Errorf("bst: Fprint: %w", err)
	}
	if err := fprintRec(w, t.root, ""); err != nil {
		return fmt.Errorf("bst: Fprint: %w", err)
	}

	return nil
}

// fprintRec writes the children of n, each line prefixed by pad.
func fprintRec[K constraints.Ordered](w io.Writer, n *Node[K], pad string) error {
	type branch struct {
		tag  string
		node *Node[K]
	}
	kids := make([]branch, 0, 2)
	if n.left != nil {
		kids = append(kids, branch{"L", n.left})
	}
	if n.right != nil {
		kids = append(kids, branch{"R", n.right})
	}

	for i, kid := range kids {
		glyph, spacer := "├─ ", "│  "
		if i == len(kids)-1 {
			glyph, spacer = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s: %v\n", pad, glyph, kid.tag, kid.node.key); err != nil {
			return err
		}
		if err := fprintRec(w, kid.node, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}
