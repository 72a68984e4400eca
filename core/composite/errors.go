package composite

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrChildNotFound    = errors.New("child not found")
)

// InvalidOperationError reports structural misuse of a node, such as adding
// a child to a Leaf.
type InvalidOperationError struct {
	NodeID string
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidOperation, e.Reason)
}

func (e *InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}

// ChildNotFoundError reports a position that does not address a child.
// Every position on a Leaf is missing.
type ChildNotFoundError struct {
	NodeID   string
	Position int
}

func (e *ChildNotFoundError) Error() string {
	return fmt.Sprintf("%s at position %d", ErrChildNotFound, e.Position)
}

func (e *ChildNotFoundError) Unwrap() error {
	return ErrChildNotFound
}
