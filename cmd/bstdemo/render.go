package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/bstree/bst"
)

// demoKeys is the sequence the demo subcommand inserts; 12 is duplicated.
var demoKeys = []int{15, 10, 20, 8, 12, 17, 25, 23, 11, 28, 99, 12}

// demoProbes are the keys the demo subcommand searches for.
var demoProbes = []int{12, 30, 99}

var (
	errNoKeys   = errors.New("no keys given")
	errBadRoute = errors.New("duplicate route must be right or left")
	errBadOrder = errors.New("order must be in, pre or post")
)

// parseKeys converts every argument to an int key.
func parseKeys(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errNoKeys
	}
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", a, err)
		}
		keys = append(keys, k)
	}

	return keys, nil
}

func parseRoute(s string) (bst.DuplicateRoute, error) {
	switch s {
	case "right", "":
		return bst.Right, nil
	case "left":
		return bst.Left, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, errBadRoute)
	}
}

func parseOrder(s string) (bst.Order, error) {
	switch s {
	case "in", "inorder":
		return bst.InOrder, nil
	case "pre", "preorder":
		return bst.PreOrder, nil
	case "post", "postorder":
		return bst.PostOrder, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, errBadOrder)
	}
}

// buildTree parses the route name and inserts keys into a new tree.
func buildTree(route string, keys []int) (*bst.Tree[int], error) {
	r, err := parseRoute(route)
	if err != nil {
		return nil, err
	}
	t, err := bst.New[int](bst.WithDuplicateRoute(r))
	if err != nil {
		return nil, err
	}
	t.InsertAll(keys...)

	return t, nil
}

// orderLabel is the line prefix used for each traversal.
func orderLabel(o bst.Order) string {
	switch o {
	case bst.PreOrder:
		return "Preorder"
	case bst.PostOrder:
		return "Postorder"
	default:
		return "Inorder"
	}
}

func writeTraversal(w io.Writer, t *bst.Tree[int], o bst.Order) error {
	_, err := fmt.Fprintf(w, "%s: %s\n", orderLabel(o), bst.FormatPath(t.Keys(o)))
	return err
}

func writeFind(w io.Writer, t *bst.Tree[int], key int) error {
	found, path := t.Find(key)
	verdict := "not found"
	if found {
		verdict = "found"
	}
	_, err := fmt.Fprintf(w, "Find %d: %s. Path: %s\n", key, verdict, bst.FormatPath(path))

	return err
}

func writeShape(w io.Writer, t *bst.Tree[int]) error {
	if _, err := fmt.Fprintf(w, "Height: %d\n", t.Height()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Max degree: %d\n", t.MaxDegree())

	return err
}

func writeStats(w io.Writer, t *bst.Tree[int]) error {
	if _, err := fmt.Fprintf(w, "Size: %d\n", t.Len()); err != nil {
		return err
	}
	if err := writeShape(w, t); err != nil {
		return err
	}
	lo, _ := t.Min()
	hi, _ := t.Max()
	_, err := fmt.Fprintf(w, "Min: %d\nMax: %d\n", lo, hi)

	return err
}

// runDemo prints traversals, shape and the probe searches for demoKeys.
func runDemo(w io.Writer, route string) error {
	t, err := buildTree(route, demoKeys)
	if err != nil {
		return err
	}
	for _, o := range []bst.Order{bst.InOrder, bst.PreOrder, bst.PostOrder} {
		if err = writeTraversal(w, t, o); err != nil {
			return err
		}
	}
	if err = writeShape(w, t); err != nil {
		return err
	}
	for _, k := range demoProbes {
		if err = writeFind(w, t, k); err != nil {
			return err
		}
	}

	return nil
}
