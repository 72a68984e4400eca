package composite

import (
	"log/slog"
	"slices"
)

// Composite holds an ordered, dense sequence of children. Removing a child
// shifts every later child down by one position.
type Composite struct {
	id       string
	name     string
	children []Node
}

func New(opt ...Option) *Composite {
	cfg := newConfig("composite", opt...)
	return &Composite{id: cfg.id, name: cfg.name, children: []Node{}}
}

func (c *Composite) ID() string {
	return c.id
}

func (c *Composite) Name() string {
	return c.name
}

func (*Composite) IsLeaf() bool {
	return false
}

func (c *Composite) Len() int {
	return len(c.children)
}

func (c *Composite) Add(child Node) error {
	if isNil(child) {
		return &InvalidOperationError{NodeID: c.id, Reason: "cannot add nil child"}
	}
	if child == Node(c) {
		return &InvalidOperationError{NodeID: c.id, Reason: "cannot add a composite to itself"}
	}
	c.children = append(c.children, child)
	slog.Debug("child added", "object", "Composite", "function", "Add", "id", c.id, "child", child.ID(), "position", len(c.children)-1)
	return nil
}

func (c *Composite) Remove(position int) error {
	if !c.has(position) {
		return &ChildNotFoundError{NodeID: c.id, Position: position}
	}
	removed := c.children[position]
	c.children = slices.Delete(c.children, position, position+1)
	slog.Debug("child removed", "object", "Composite", "function", "Remove", "id", c.id, "child", removed.ID(), "position", position)
	return nil
}

func (c *Composite) Child(position int) (Node, error) {
	if !c.has(position) {
		return nil, &ChildNotFoundError{NodeID: c.id, Position: position}
	}
	return c.children[position], nil
}

// Children returns a copy, never nil.
func (c *Composite) Children() []Node {
	return append(make([]Node, 0, len(c.children)), c.children...)
}

func (c *Composite) Operation(r Reporter) {
	c.operate(r, 0)
}

func (c *Composite) operate(r Reporter, depth int) {
	report(r, Event{Kind: EventComposite, ID: c.id, Name: c.name, Depth: depth, Children: len(c.children)})
	for _, child := range c.children {
		child.operate(r, depth+1)
	}
}

func (c *Composite) has(position int) bool {
	return position >= 0 && position < len(c.children)
}
