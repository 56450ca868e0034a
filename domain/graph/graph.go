// Package graph materializes the store's nested query results into a
// deduplicated node/edge graph and annotates it for visualization.
package graph

import "fmt"

// ReverseMarker prefixes a relation name that was traversed backward
// relative to its declared direction in the schema.
const ReverseMarker = "~"

// Direction indicates how a relation was traversed
type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
)

// ColorPair holds the display colors assigned to a node type
type ColorPair struct {
	Background string `json:"background"`
	Border     string `json:"border"`
}

// Position is a 2-D coordinate computed by a layout provider
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a materialized graph node. Exactly one Node exists per distinct
// UID within a Graph; attributes observed on later encounters are merged
// into the same record.
type Node struct {
	UID        string
	Types      []string
	Attributes map[string]interface{}
	Fixed      bool
	Label      string
	Color      ColorPair
}

// Type returns the first declared type tag, or "" when the node carries none
func (n *Node) Type() string {
	if len(n.Types) == 0 {
		return ""
	}
	return n.Types[0]
}

// Edge is a materialized relation between two nodes. From and To are
// normalized: reverse-traversed relations are flipped so that From
// performed the relation on To regardless of traversal order.
type Edge struct {
	ID        string
	From      string
	To        string
	Relation  string
	Direction Direction
}

// EdgeID derives the stable edge identity from the normalized pair and
// the relation name, collapsing duplicates discovered via different
// traversal paths.
func EdgeID(from, to, relation string) string {
	return fmt.Sprintf("%s-%s-%s", from, to, relation)
}

// Graph is a canonical directed graph built fresh for each request
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[string]*Edge
	edgeOrder []string
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}

// Node returns the node with the given UID, or nil
func (g *Graph) Node(uid string) *Node {
	return g.nodes[uid]
}

// Nodes returns all nodes in first-observation order
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, uid := range g.nodeOrder {
		out = append(out, g.nodes[uid])
	}
	return out
}

// Edges returns all edges in first-observation order
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}
	return out
}

// NodeCount returns the number of distinct nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// upsert returns the node for uid, creating it on first observation
func (g *Graph) upsert(uid string) *Node {
	if n, ok := g.nodes[uid]; ok {
		return n
	}
	n := &Node{
		UID:        uid,
		Attributes: make(map[string]interface{}),
	}
	g.nodes[uid] = n
	g.nodeOrder = append(g.nodeOrder, uid)
	return n
}

// addEdge records a normalized edge, collapsing duplicates by identity
func (g *Graph) addEdge(from, to, relation string, direction Direction) {
	id := EdgeID(from, to, relation)
	if _, ok := g.edges[id]; ok {
		return
	}
	g.edges[id] = &Edge{
		ID:        id,
		From:      from,
		To:        to,
		Relation:  relation,
		Direction: direction,
	}
	g.edgeOrder = append(g.edgeOrder, id)
}
