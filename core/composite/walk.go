package composite

import (
	"fmt"
	"iter"
)

// Walk yields (depth, node) in the order Operation visits them.
func Walk(root Node) iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		if isNil(root) {
			return
		}
		walk(root, 0, yield)
	}
}

func walk(n Node, depth int, yield func(int, Node) bool) bool {
	if !yield(depth, n) {
		return false
	}
	for _, child := range n.Children() {
		if !walk(child, depth+1, yield) {
			return false
		}
	}
	return true
}

func Count(root Node) int {
	count := 0
	for range Walk(root) {
		count++
	}
	return count
}

// Find follows child positions from root. An empty path returns root.
func Find(root Node, path ...int) (Node, error) {
	current := root
	for i, position := range path {
		if isNil(current) {
			return nil, fmt.Errorf("path %v: %w", path[:i+1], &ChildNotFoundError{Position: position})
		}
		next, err := current.Child(position)
		if err != nil {
			return nil, fmt.Errorf("path %v: %w", path[:i+1], err)
		}
		current = next
	}
	return current, nil
}
