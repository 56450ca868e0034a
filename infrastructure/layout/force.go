// Package layout provides the layout providers that place materialized
// graphs in 2-D space.
package layout

import (
	"context"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	gonumlayout "gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"

	"granefapi/domain/graph"
)

// ForceDirected computes coordinates with a force-directed simulation.
// Results are deterministic for a given graph: node ids are assigned in
// sorted UID order and the simulation is seeded.
type ForceDirected struct {
	Iterations int
	Scale      float64
	Seed       uint64
}

// NewForceDirected creates a force-directed provider
func NewForceDirected(iterations int, scale float64) *ForceDirected {
	return &ForceDirected{
		Iterations: iterations,
		Scale:      scale,
		Seed:       1,
	}
}

// Coordinates implements ports.LayoutProvider
func (f *ForceDirected) Coordinates(ctx context.Context, g *graph.Graph) (map[string]graph.Position, error) {
	positions := make(map[string]graph.Position, g.NodeCount())
	if g.NodeCount() == 0 {
		return positions, nil
	}

	uids := make([]string, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		uids = append(uids, n.UID)
	}
	sort.Strings(uids)

	index := make(map[string]int64, len(uids))
	sg := simple.NewUndirectedGraph()
	for i, uid := range uids {
		index[uid] = int64(i)
		sg.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		from, to := index[e.From], index[e.To]
		if from == to {
			// The layout graph cannot hold self loops
			continue
		}
		sg.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	eades := gonumlayout.EadesR2{
		Repulsion: 1,
		Rate:      0.05,
		Updates:   f.Iterations,
		Theta:     0.1,
		Src:       rand.NewSource(f.Seed),
	}
	optimizer := gonumlayout.NewOptimizerR2(sg, eades.Update)
	for optimizer.Update() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	// Rescale so the widest coordinate lands on the display range
	widest := 0.0
	for _, uid := range uids {
		v := optimizer.Coord2(index[uid])
		widest = math.Max(widest, math.Max(math.Abs(v.X), math.Abs(v.Y)))
	}
	factor := 1.0
	if widest > 0 {
		factor = f.Scale / widest
	}

	for _, uid := range uids {
		v := optimizer.Coord2(index[uid])
		positions[uid] = graph.Position{X: v.X * factor, Y: v.Y * factor}
	}
	return positions, nil
}
