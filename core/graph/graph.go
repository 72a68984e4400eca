package graph

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"

	"github.com/benji-bou/canopy/core/composite"
	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

var (
	ErrSharedNode  = errors.New("node reachable more than once")
	ErrDuplicateID = errors.New("distinct nodes share an id")
)

// TreeGraph is the rooted DAG view of a composite tree, keyed by node ID.
// Edges go from parent to child and carry the child position.
type TreeGraph struct {
	graph.Graph[string, composite.Node]
	root  string
	order []string
}

func New(root composite.Node) (*TreeGraph, error) {
	if root == nil {
		return nil, errors.New("tree graph: nil root")
	}
	tg := &TreeGraph{
		Graph: graph.New(func(n composite.Node) string {
			return n.ID()
		}, graph.Directed(), graph.Rooted(), graph.PreventCycles()),
		root: root.ID(),
	}
	if err := tg.addSubtree("", root, 0); err != nil {
		return nil, fmt.Errorf("tree graph: %w", err)
	}
	slog.Debug("tree graph built", "object", "TreeGraph", "function", "New", "root", tg.root, "order", len(tg.order))
	return tg, nil
}

func (tg *TreeGraph) addSubtree(parent string, n composite.Node, position int) error {
	shape := "box"
	if n.IsLeaf() {
		shape = "ellipse"
	}
	err := tg.AddVertex(n, graph.VertexAttribute("label", n.Name()), graph.VertexAttribute("shape", shape))
	if errors.Is(err, graph.ErrVertexAlreadyExists) {
		if existing, errVertex := tg.Vertex(n.ID()); errVertex == nil && existing != n {
			return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID())
		}
		return fmt.Errorf("%w: %s (%s)", ErrSharedNode, n.Name(), n.ID())
	}
	if err != nil {
		return err
	}
	tg.order = append(tg.order, n.ID())
	if parent != "" {
		if err := tg.AddEdge(parent, n.ID(), graph.EdgeAttribute("label", strconv.Itoa(position))); err != nil {
			return fmt.Errorf("link %s to %s: %w", parent, n.ID(), err)
		}
	}
	for i, child := range n.Children() {
		if err := tg.addSubtree(n.ID(), child, i); err != nil {
			return err
		}
	}
	return nil
}

func (tg *TreeGraph) Root() string {
	return tg.root
}

func (tg *TreeGraph) DrawGraph(w io.Writer) error {
	return draw.DOT(tg.Graph, w, draw.GraphAttribute("rankdir", "TB"))
}

// IterChildless yields nodes without outgoing edge (leaves and empty
// composites) in pre-order.
func (tg *TreeGraph) IterChildless() iter.Seq[composite.Node] {
	return func(yield func(composite.Node) bool) {
		adjacency, err := tg.AdjacencyMap()
		if err != nil {
			slog.Error("adjacency map unavailable", "object", "TreeGraph", "function", "IterChildless", "error", err)
			return
		}
		for _, id := range tg.order {
			if len(adjacency[id]) != 0 {
				continue
			}
			vertex, err := tg.Vertex(id)
			if err != nil {
				continue
			}
			if !yield(vertex) {
				return
			}
		}
	}
}

// Position returns the child position stored on the parent -> child edge.
func (tg *TreeGraph) Position(parent, child string) (int, error) {
	edge, err := tg.Edge(parent, child)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(edge.Properties.Attributes["label"])
}
