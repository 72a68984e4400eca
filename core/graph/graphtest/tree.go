package graphtest

import (
	"testing"

	"github.com/benji-bou/canopy/core/composite"
)

// TestNode describes a fixture node; Children nil means leaf.
type TestNode struct {
	ID       string
	Children []TestNode
}

type TreeTestCases struct {
	Name      string
	Root      TestNode
	Order     int
	Childless []string
}

func Leaf(id string) TestNode {
	return TestNode{ID: id}
}

func Branch(id string, children ...TestNode) TestNode {
	if children == nil {
		children = []TestNode{}
	}
	return TestNode{ID: id, Children: children}
}

// Build turns a fixture into a composite tree. IDs double as names.
func Build(t *testing.T, tn TestNode) composite.Node {
	t.Helper()
	opts := []composite.Option{composite.WithID(tn.ID), composite.WithName(tn.ID)}
	if tn.Children == nil {
		return composite.NewLeaf(opts...)
	}
	c := composite.New(opts...)
	for _, child := range tn.Children {
		if err := c.Add(Build(t, child)); err != nil {
			t.Fatalf("graphtest: add %s under %s: %v", child.ID, tn.ID, err)
		}
	}
	return c
}

func GenerateTreeTestCases() []TreeTestCases {
	return []TreeTestCases{
		{
			Name:      "single_leaf",
			Root:      Leaf("1"),
			Order:     1,
			Childless: []string{"1"},
		},
		{
			Name:      "empty_composite",
			Root:      Branch("1"),
			Order:     1,
			Childless: []string{"1"},
		},
		{
			Name:      "flat_2_leaves",
			Root:      Branch("1", Leaf("1_1"), Leaf("1_2")),
			Order:     3,
			Childless: []string{"1_1", "1_2"},
		},
		{
			Name: "nested_bin_leaf",
			Root: Branch("1",
				Branch("1_1", Leaf("1_1_1"), Leaf("1_1_2")),
				Leaf("1_2"),
				Branch("1_3", Branch("1_3_1")),
			),
			Order:     7,
			Childless: []string{"1_1_1", "1_1_2", "1_2", "1_3_1"},
		},
	}
}
