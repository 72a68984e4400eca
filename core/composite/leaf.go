package composite

type Leaf struct {
	id   string
	name string
}

// NewLeaf creates a terminal node and announces it to the reporter given
// with WithReporter, if any.
func NewLeaf(opt ...Option) *Leaf {
	cfg := newConfig("leaf", opt...)
	l := &Leaf{id: cfg.id, name: cfg.name}
	report(cfg.reporter, Event{Kind: EventCreated, ID: l.id, Name: l.name})
	return l
}

func (l *Leaf) ID() string {
	return l.id
}

func (l *Leaf) Name() string {
	return l.name
}

func (*Leaf) IsLeaf() bool {
	return true
}

func (l *Leaf) Add(_ Node) error {
	return &InvalidOperationError{NodeID: l.id, Reason: "cannot add child to a leaf"}
}

func (l *Leaf) Remove(position int) error {
	return &ChildNotFoundError{NodeID: l.id, Position: position}
}

func (l *Leaf) Child(position int) (Node, error) {
	return nil, &ChildNotFoundError{NodeID: l.id, Position: position}
}

func (*Leaf) Children() []Node {
	return []Node{}
}

func (l *Leaf) Operation(r Reporter) {
	l.operate(r, 0)
}

func (l *Leaf) operate(r Reporter, depth int) {
	report(r, Event{Kind: EventLeaf, ID: l.id, Name: l.name, Depth: depth})
}
