package composite_test

import (
	"errors"
	"testing"

	"github.com/benji-bou/canopy/core/composite"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(nodes []composite.Node) []string {
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = n.ID()
	}
	return res
}

func TestCompositeAddAppendsLast(t *testing.T) {
	root := composite.New()
	for i, id := range []string{"a", "b", "c"} {
		before := len(root.Children())
		require.NoError(t, root.Add(composite.NewLeaf(composite.WithID(id))))
		children := root.Children()
		assert.Len(t, children, before+1, "add #%d", i)
		assert.Equal(t, id, children[len(children)-1].ID())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids(root.Children())); diff != "" {
		t.Errorf("children order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompositeAddRejectsNilAndSelf(t *testing.T) {
	root := composite.New()
	var nilLeaf *composite.Leaf

	for name, child := range map[string]composite.Node{
		"nil interface": nil,
		"typed nil":     nilLeaf,
		"self":          root,
	} {
		t.Run(name, func(t *testing.T) {
			err := root.Add(child)
			require.ErrorIs(t, err, composite.ErrInvalidOperation)
			assert.Empty(t, root.Children())
		})
	}
}

func TestEmptyCompositeChild(t *testing.T) {
	root := composite.New(composite.WithID("root"))
	child, err := root.Child(0)
	assert.Nil(t, child)
	require.ErrorIs(t, err, composite.ErrChildNotFound)

	var notFound *composite.ChildNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 0, notFound.Position)
	assert.Equal(t, "root", notFound.NodeID)
	assert.NotNil(t, root.Children())
	assert.Empty(t, root.Children())
}

func TestCompositeRemoveShiftsChildren(t *testing.T) {
	root := composite.New()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, root.Add(composite.NewLeaf(composite.WithID(id))))
	}
	require.NoError(t, root.Remove(0))
	if diff := cmp.Diff([]string{"b", "c"}, ids(root.Children())); diff != "" {
		t.Errorf("after Remove(0) (-want +got):\n%s", diff)
	}
	child, err := root.Child(0)
	require.NoError(t, err)
	assert.Equal(t, "b", child.ID())
}

func TestCompositeRemoveTwiceFails(t *testing.T) {
	root := composite.New()
	require.NoError(t, root.Add(composite.NewLeaf()))
	require.NoError(t, root.Remove(0))
	err := root.Remove(0)
	require.ErrorIs(t, err, composite.ErrChildNotFound)
	assert.Equal(t, 0, root.Len())
}

func TestCompositeRemoveOutOfRange(t *testing.T) {
	root := composite.New()
	require.NoError(t, root.Add(composite.NewLeaf()))
	require.NoError(t, root.Add(composite.NewLeaf()))

	for _, position := range []int{5, 2, -1} {
		err := root.Remove(position)
		var notFound *composite.ChildNotFoundError
		require.ErrorAs(t, err, &notFound, "Remove(%d)", position)
		assert.Equal(t, position, notFound.Position)
	}
	assert.Len(t, root.Children(), 2)
	assert.EqualError(t, root.Remove(5), "child not found at position 5")
}

func TestChildrenIsACopy(t *testing.T) {
	root := composite.New()
	require.NoError(t, root.Add(composite.NewLeaf(composite.WithID("a"))))
	children := root.Children()
	children[0] = composite.NewLeaf(composite.WithID("z"))
	_ = append(children, composite.NewLeaf())
	assert.Equal(t, []string{"a"}, ids(root.Children()))
}

func TestLeafRejectsStructuralOperations(t *testing.T) {
	leaf := composite.NewLeaf(composite.WithID("l"))

	err := leaf.Add(composite.NewLeaf())
	require.ErrorIs(t, err, composite.ErrInvalidOperation)
	assert.EqualError(t, err, "invalid operation: cannot add child to a leaf")

	for _, position := range []int{0, 1, 42, -3} {
		_, err := leaf.Child(position)
		require.ErrorIs(t, err, composite.ErrChildNotFound)
		require.ErrorIs(t, leaf.Remove(position), composite.ErrChildNotFound)
	}
	assert.NotNil(t, leaf.Children())
	assert.Empty(t, leaf.Children())
	assert.True(t, leaf.IsLeaf())
	assert.NotPanics(t, func() { leaf.Operation(nil) })
}

func TestErrorKindsAreDistinct(t *testing.T) {
	leaf := composite.NewLeaf()
	assert.False(t, errors.Is(leaf.Add(leaf), composite.ErrChildNotFound))
	assert.False(t, errors.Is(leaf.Remove(0), composite.ErrInvalidOperation))
}

func TestDefaultIdentity(t *testing.T) {
	a, b := composite.NewLeaf(), composite.NewLeaf()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "leaf", a.Name())
	assert.Equal(t, "composite", composite.New().Name())
	assert.Equal(t, "root", composite.New(composite.WithName("root")).Name())
	assert.Equal(t, "leaf", composite.NewLeaf(composite.WithName("")).Name())
}

func TestLeafAnnouncesCreation(t *testing.T) {
	rec := &composite.Recorder{}
	composite.NewLeaf(composite.WithID("x"), composite.WithReporter(rec))
	composite.New(composite.WithReporter(rec))
	want := []composite.Event{{Kind: composite.EventCreated, ID: "x", Name: "leaf"}}
	if diff := cmp.Diff(want, rec.Events); diff != "" {
		t.Errorf("creation events (-want +got):\n%s", diff)
	}
}
