package graph_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/benji-bou/canopy/core/composite"
	"github.com/benji-bou/canopy/core/graph"
	"github.com/benji-bou/canopy/core/graph/graphtest"
	"github.com/benji-bou/canopy/helper"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// root[a[c], b, d[]]
func sampleTree(t *testing.T) *composite.Composite {
	t.Helper()
	root := composite.New(composite.WithID("root"), composite.WithName("root"))
	a := composite.New(composite.WithID("a"), composite.WithName("A"))
	require.NoError(t, a.Add(composite.NewLeaf(composite.WithID("c"), composite.WithName("C"))))
	require.NoError(t, root.Add(a))
	require.NoError(t, root.Add(composite.NewLeaf(composite.WithID("b"), composite.WithName("B"))))
	require.NoError(t, root.Add(composite.New(composite.WithID("d"), composite.WithName("D"))))
	return root
}

func TestNewMirrorsTree(t *testing.T) {
	tg, err := graph.New(sampleTree(t))
	require.NoError(t, err)
	assert.Equal(t, "root", tg.Root())

	order, err := tg.Order()
	require.NoError(t, err)
	assert.Equal(t, 5, order)

	size, err := tg.Size()
	require.NoError(t, err)
	assert.Equal(t, 4, size)

	position, err := tg.Position("root", "b")
	require.NoError(t, err)
	assert.Equal(t, 1, position)
}

func TestIterChildless(t *testing.T) {
	tg, err := graph.New(sampleTree(t))
	require.NoError(t, err)
	got := slices.Collect(helper.IterMap(tg.IterChildless(), func(n composite.Node) string { return n.ID() }))
	if diff := cmp.Diff([]string{"c", "b", "d"}, got); diff != "" {
		t.Errorf("childless vertices (-want +got):\n%s", diff)
	}
}

func TestSharedNodeRejected(t *testing.T) {
	testCases := []struct {
		name  string
		build func(t *testing.T) composite.Node
	}{
		{
			name: "shared leaf",
			build: func(t *testing.T) composite.Node {
				root := composite.New()
				leaf := composite.NewLeaf()
				require.NoError(t, root.Add(leaf))
				require.NoError(t, root.Add(leaf))
				return root
			},
		},
		{
			name: "cycle",
			build: func(t *testing.T) composite.Node {
				root := composite.New()
				sub := composite.New()
				require.NoError(t, root.Add(sub))
				require.NoError(t, sub.Add(root))
				return root
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tg, err := graph.New(tc.build(t))
			assert.Nil(t, tg)
			require.ErrorIs(t, err, graph.ErrSharedNode)
		})
	}
}

func TestDistinctNodesWithSameID(t *testing.T) {
	root := composite.New(composite.WithID("root"))
	require.NoError(t, root.Add(composite.NewLeaf(composite.WithID("twin"), composite.WithName("left"))))
	require.NoError(t, root.Add(composite.NewLeaf(composite.WithID("twin"), composite.WithName("right"))))

	tg, err := graph.New(root)
	assert.Nil(t, tg)
	require.ErrorIs(t, err, graph.ErrDuplicateID)
	assert.NotErrorIs(t, err, graph.ErrSharedNode)
	assert.Contains(t, err.Error(), "twin")
}

func TestNilRoot(t *testing.T) {
	_, err := graph.New(nil)
	require.Error(t, err)
}

func TestDrawGraph(t *testing.T) {
	tg, err := graph.New(sampleTree(t))
	require.NoError(t, err)
	buff := &bytes.Buffer{}
	require.NoError(t, tg.DrawGraph(buff))

	dot := buff.String()
	assert.Contains(t, dot, "digraph")
	assert.Contains(t, dot, `"root" -> "a"`)
	assert.Contains(t, dot, `"a" -> "c"`)
	assert.Contains(t, dot, `label="C"`)
	assert.Contains(t, dot, `shape="ellipse"`)
	assert.Contains(t, dot, `rankdir="TB"`)
}

func TestGeneratedTrees(t *testing.T) {
	for _, tc := range graphtest.GenerateTreeTestCases() {
		t.Run(tc.Name, func(t *testing.T) {
			root := graphtest.Build(t, tc.Root)
			tg, err := graph.New(root)
			require.NoError(t, err)

			order, err := tg.Order()
			require.NoError(t, err)
			assert.Equal(t, tc.Order, order)
			assert.Equal(t, tc.Order, composite.Count(root))

			size, err := tg.Size()
			require.NoError(t, err)
			assert.Equal(t, tc.Order-1, size)

			got := slices.Collect(helper.IterMap(tg.IterChildless(), func(n composite.Node) string { return n.ID() }))
			if diff := cmp.Diff(tc.Childless, got); diff != "" {
				t.Errorf("childless vertices (-want +got):\n%s", diff)
			}
		})
	}
}
