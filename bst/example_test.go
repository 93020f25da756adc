package bst_test

import (
	"fmt"

	"github.com/katalvlaran/bstree/bst"
)

// ExampleTree demonstrates insertion with a duplicate key, the three
// traversals and the structural queries.
//
//	      15
//	     /  \
//	   10    20
//	  /  \   / \
//	 8   12 17  25
//	    / \    /  \
//	   11 12  23   28
//	                 \
//	                  99
func ExampleTree() {
	t := &bst.Tree[int]{}
	t.InsertAll(15, 10, 20, 8, 12, 17, 25, 23, 11, 28, 99, 12)

	fmt.Println("Inorder:  ", bst.FormatPath(t.InorderKeys()))
	fmt.Println("Preorder: ", bst.FormatPath(t.PreorderKeys()))
	fmt.Println("Postorder:", bst.FormatPath(t.PostorderKeys()))
	fmt.Println("Height:", t.Height())
	fmt.Println("Max degree:", t.MaxDegree())

	// Output:
	// Inorder:   8 --> 10 --> 11 --> 12 --> 12 --> 15 --> 17 --> 20 --> 23 --> 25 --> 28 --> 99 --> NULL
	// Preorder:  15 --> 10 --> 8 --> 12 --> 11 --> 12 --> 20 --> 17 --> 25 --> 23 --> 28 --> 99 --> NULL
	// Postorder: 8 --> 11 --> 12 --> 12 --> 10 --> 17 --> 23 --> 99 --> 28 --> 25 --> 20 --> 15 --> NULL
	// Height: 4
	// Max degree: 2
}

// ExampleTree_Find shows the recorded search path for a hit and a miss.
func ExampleTree_Find() {
	t := &bst.Tree[int]{}
	t.InsertAll(15, 10, 20, 8, 12, 17, 25, 23, 11, 28, 99, 12)

	for _, k := range []int{12, 30} {
		found, path := t.Find(k)
		fmt.Println(k, found, bst.FormatPath(path))
	}

	// Output:
	// 12 true 15 --> 10 --> 12 --> NULL
	// 30 false 15 --> 20 --> 25 --> 28 --> 99 --> NULL
}

// ExampleTree_Inorder ranges over the lazy in-order sequence.
func ExampleTree_Inorder() {
	t := &bst.Tree[string]{}
	t.InsertAll("kiwi", "apple", "plum", "fig")

	for k := range t.Inorder() {
		fmt.Println(k)
	}

	// Output:
	// apple
	// fig
	// kiwi
	// plum
}

// ExampleNew builds a tree that routes duplicates to the left.
func ExampleNew() {
	t, err := bst.New[int](bst.WithDuplicateRoute(bst.Left))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	t.InsertAll(2, 1, 2)
	fmt.Print(t)

	// Output:
	// 2
	// └─ L: 1
	//    └─ R: 2
}
