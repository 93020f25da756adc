package bst_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bstree/bst"
)

const scenarioDiagram = `15
├─ L: 10
│  ├─ L: 8
│  └─ R: 12
│     ├─ L: 11
│     └─ R: 12
└─ R: 20
   ├─ L: 17
   └─ R: 25
      ├─ L: 23
      └─ R: 28
         └─ R: 99
`

// failWriter accepts the first calls writes and refuses the rest.
type failWriter struct{ calls int }

var errWrite = errors.New("write refused")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.calls == 0 {
		return 0, errWrite
	}
	w.calls--

	return len(p), nil
}

func TestFprint_Scenario(t *testing.T) {
	tr := buildTree(scenarioKeys...)
	var sb strings.Builder
	require.NoError(t, tr.Fprint(&sb))
	assert.Equal(t, scenarioDiagram, sb.String())
	assert.Equal(t, scenarioDiagram, tr.String())

	text, err := tr.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, scenarioDiagram, string(text))
}

func TestFprint_EmptyTree(t *testing.T) {
	tr := &bst.Tree[int]{}
	var sb strings.Builder
	require.NoError(t, tr.Fprint(&sb))
	assert.Empty(t, sb.String())
}

func TestFprint_SingleLeftChild(t *testing.T) {
	tr := buildTree(2, 1)
	assert.Equal(t, "2\n└─ L: 1\n", tr.String())
}

func TestFprint_NilWriter(t *testing.T) {
	tr := buildTree(1)
	assert.ErrorIs(t, tr.Fprint(nil), bst.ErrNilWriter)
}

func TestFprint_WriteError(t *testing.T) {
	tr := buildTree(scenarioKeys...)
	assert.ErrorIs(t, tr.Fprint(&failWriter{calls: 0}), errWrite)
	assert.ErrorIs(t, tr.Fprint(&failWriter{calls: 4}), errWrite)
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "NULL", bst.FormatPath[int](nil))
	assert.Equal(t, "15 --> 10 --> 12 --> NULL", bst.FormatPath([]int{15, 10, 12}))
	assert.Equal(t, "a --> b --> NULL", bst.FormatPath([]string{"a", "b"}))
}
