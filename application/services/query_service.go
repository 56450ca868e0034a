// Package services wires the transformation core together: query
// preprocessing, store execution, materialization, annotation, layout,
// and result-mode selection.
package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"granefapi/application/ports"
	"granefapi/application/queries"
	"granefapi/domain/graph"
	dquery "granefapi/domain/query"
	apperrors "granefapi/pkg/errors"
)

// Mode selects the result shape of a query
type Mode string

const (
	ModeJSON  Mode = "json"
	ModeGraph Mode = "graph"
)

// DefaultLayout is the layout hint assumed when the caller gives none
const DefaultLayout = "force_directed"

// knownLayouts whitelists the layout hints the API accepts. Anything the
// force-directed provider cannot serve falls back to it; the whitelist
// only guards against typos becoming silent defaults.
var knownLayouts = map[string]bool{
	"force_directed": true,
	"grid":           true,
}

// Request is one query execution request as seen by the service
type Request struct {
	Query  queries.Request
	Mode   string
	Layout string
}

// QueryService executes store queries and shapes their results
type QueryService struct {
	store    ports.Store
	layouts  map[string]ports.LayoutProvider
	maxNodes int
	logger   *zap.Logger
}

// NewQueryService creates a query service. maxNodes bounds coordinate
// placement: larger graphs are returned without layout.
func NewQueryService(
	store ports.Store,
	layouts map[string]ports.LayoutProvider,
	maxNodes int,
	logger *zap.Logger,
) *QueryService {
	return &QueryService{
		store:    store,
		layouts:  layouts,
		maxNodes: maxNodes,
		logger:   logger,
	}
}

// Handle runs one request end to end and returns the output document:
// the store's decoded JSON for json mode, or the materialized, annotated
// and laid-out graph document for graph mode.
func (s *QueryService) Handle(ctx context.Context, req Request) (interface{}, error) {
	mode, err := parseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	layoutName, err := s.parseLayout(req.Layout)
	if err != nil {
		return nil, err
	}

	body := req.Query.Body
	if mode == ModeGraph {
		// Graph mode needs uid and dgraph.type on every node to
		// materialize identities
		body = dquery.Inject(body)
	}

	raw, err := s.store.Query(ctx, req.Query.Header+body, req.Query.Vars)
	if err != nil {
		return nil, err
	}

	if mode == ModeJSON {
		var doc interface{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, apperrors.NewInternalError("store returned malformed JSON").WithCause(err)
		}
		return doc, nil
	}

	g, err := graph.MaterializeDocument(raw)
	if err != nil {
		return nil, err
	}
	graph.Annotate(g)

	positions, err := s.layoutPositions(ctx, layoutName, g)
	if err != nil {
		return nil, err
	}

	return g.View(positions), nil
}

// layoutPositions computes node coordinates, skipping placement entirely
// for graphs above the configured bound
func (s *QueryService) layoutPositions(ctx context.Context, name string, g *graph.Graph) (map[string]graph.Position, error) {
	if g.NodeCount() == 0 {
		return nil, nil
	}
	if s.maxNodes > 0 && g.NodeCount() > s.maxNodes {
		s.logger.Info("Skipping layout placement",
			zap.Int("nodes", g.NodeCount()),
			zap.Int("maxNodes", s.maxNodes),
		)
		return nil, nil
	}

	provider, ok := s.layouts[name]
	if !ok {
		provider = s.layouts[DefaultLayout]
	}
	if provider == nil {
		return nil, nil
	}
	positions, err := provider.Coordinates(ctx, g)
	if err != nil {
		return nil, apperrors.Wrap(err, "layout computation failed")
	}
	return positions, nil
}

// parseMode validates the type selector
func parseMode(raw string) (Mode, error) {
	switch raw {
	case "", string(ModeJSON):
		return ModeJSON, nil
	case string(ModeGraph):
		return ModeGraph, nil
	default:
		return "", apperrors.NewInvalidModeError("type", raw)
	}
}

// parseLayout validates the layout selector
func (s *QueryService) parseLayout(raw string) (string, error) {
	if raw == "" {
		return DefaultLayout, nil
	}
	if !knownLayouts[raw] {
		return "", apperrors.NewInvalidModeError("layout", raw)
	}
	return raw, nil
}
