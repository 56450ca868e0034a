package layout

import (
	"context"
	"math"
	"sort"

	"granefapi/domain/graph"
)

// Grid places nodes on a square grid in sorted UID order. It ignores
// edges entirely, which makes it cheap and fully predictable; it also
// serves as the deterministic stand-in for tests.
type Grid struct {
	Spacing float64
}

// NewGrid creates a grid provider
func NewGrid(spacing float64) *Grid {
	return &Grid{Spacing: spacing}
}

// Coordinates implements ports.LayoutProvider
func (p *Grid) Coordinates(ctx context.Context, g *graph.Graph) (map[string]graph.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uids := make([]string, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		uids = append(uids, n.UID)
	}
	sort.Strings(uids)

	side := int(math.Ceil(math.Sqrt(float64(len(uids)))))
	positions := make(map[string]graph.Position, len(uids))
	for i, uid := range uids {
		if side == 0 {
			break
		}
		positions[uid] = graph.Position{
			X: float64(i%side) * p.Spacing,
			Y: float64(i/side) * p.Spacing,
		}
	}
	return positions, nil
}
