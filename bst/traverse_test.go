package bst_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bstree/bst"
)

func TestTraversals_EmptyTree(t *testing.T) {
	tr := &bst.Tree[int]{}
	for _, o := range []bst.Order{bst.InOrder, bst.PreOrder, bst.PostOrder} {
		keys := tr.Keys(o)
		assert.NotNil(t, keys, o.String())
		assert.Empty(t, keys, o.String())
	}
	assert.Empty(t, slices.Collect(tr.Inorder()))
}

func TestTraversals_SeqMatchesKeys(t *testing.T) {
	tr := buildTree(scenarioKeys...)
	assert.Equal(t, tr.InorderKeys(), slices.Collect(tr.Inorder()))
	assert.Equal(t, tr.PreorderKeys(), slices.Collect(tr.Preorder()))
	assert.Equal(t, tr.PostorderKeys(), slices.Collect(tr.Postorder()))
}

func TestTraversals_BreakStopsEarly(t *testing.T) {
	tr := buildTree(scenarioKeys...)
	var got []int
	for k := range tr.Preorder() {
		if len(got) == 3 {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, []int{15, 10, 8}, got)
}

func TestWalk_StopOnFalse(t *testing.T) {
	tr := buildTree(scenarioKeys...)
	var got []int
	tr.Walk(bst.PostOrder, func(k int) bool {
		got = append(got, k)
		return k != 10
	})
	assert.Equal(t, []int{8, 11, 12, 12, 10}, got)
}

func TestWalk_UnknownOrder(t *testing.T) {
	tr := buildTree(scenarioKeys...)
	calls := 0
	tr.Walk(bst.Order(42), func(int) bool {
		calls++
		return true
	})
	assert.Zero(t, calls)
	assert.Equal(t, "invalid", bst.Order(42).String())
}

func TestOrder_String(t *testing.T) {
	assert.Equal(t, "inorder", bst.InOrder.String())
	assert.Equal(t, "preorder", bst.PreOrder.String())
	assert.Equal(t, "postorder", bst.PostOrder.String())
}

func TestTraversals_DoNotMutate(t *testing.T) {
	tr := buildTree(scenarioKeys...)
	before := tr.String()
	_ = tr.InorderKeys()
	_ = slices.Collect(tr.Postorder())
	_ = tr.Height()
	_ = tr.MaxDegree()
	_, _ = tr.Find(30)
	assert.Equal(t, before, tr.String())
	assert.Equal(t, 12, tr.Len())
}
