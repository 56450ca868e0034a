package graph

import (
	"fmt"
	"sort"
	"strings"
)

// ViewNode is a node prepared for the visualization client
type ViewNode struct {
	ID    string    `json:"id"`
	X     *float64  `json:"x,omitempty"`
	Y     *float64  `json:"y,omitempty"`
	Label string    `json:"label"`
	Color ColorPair `json:"color"`
	Fixed bool      `json:"fixed"`
	Title string    `json:"title,omitempty"`
}

// ViewEdge is an edge prepared for the visualization client
type ViewEdge struct {
	ID     string `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Arrows string `json:"arrows"`
	Label  string `json:"label"`
}

// ViewDocument is the graph-mode output document
type ViewDocument struct {
	Nodes []ViewNode `json:"nodes"`
	Edges []ViewEdge `json:"edges"`
}

// View renders the annotated graph as a visualization document. When
// positions is nil, coordinate placement was skipped and nodes carry no
// x/y (and are not pinned), leaving layout to the client.
func (g *Graph) View(positions map[string]Position) *ViewDocument {
	doc := &ViewDocument{
		Nodes: make([]ViewNode, 0, g.NodeCount()),
		Edges: make([]ViewEdge, 0, g.EdgeCount()),
	}

	for _, n := range g.Nodes() {
		vn := ViewNode{
			ID:    n.UID,
			Label: n.Label,
			Color: n.Color,
			Title: titleFor(n),
		}
		if vn.Label == "" {
			// A non-empty label keeps the client from animating placeholders
			vn.Label = " "
		}
		if pos, ok := positions[n.UID]; ok {
			x, y := pos.X, pos.Y
			vn.X, vn.Y = &x, &y
			vn.Fixed = n.Fixed
		}
		doc.Nodes = append(doc.Nodes, vn)
	}

	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, ViewEdge{
			ID:     e.ID,
			From:   e.From,
			To:     e.To,
			Arrows: "to",
			Label:  e.Relation,
		})
	}

	return doc
}

// titleFor aggregates the remaining attributes into the hover text
func titleFor(n *Node) string {
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		if k == "label" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "<b>%s:</b> %v<br>", k, n.Attributes[k])
	}
	return b.String()
}
