// Package ports defines the contracts the application layer consumes
// from infrastructure.
package ports

import (
	"context"

	"granefapi/domain/graph"
)

// Store executes finished query text against the graph store and returns
// the raw JSON document keyed by top-level query names. Implementations
// must use read-only transactions and discard them on every exit path.
type Store interface {
	Query(ctx context.Context, query string, vars map[string]string) ([]byte, error)
}

// LayoutProvider computes 2-D coordinates for a materialized graph. The
// returned map is keyed by node UID and must be deterministic for a
// given graph.
type LayoutProvider interface {
	Coordinates(ctx context.Context, g *graph.Graph) (map[string]graph.Position, error)
}
