package handlers

import (
	"net/http"
	"strconv"

	"granefapi/application/queries"
)

// GraphHandler serves node-centric traversal queries
type GraphHandler struct {
	*QueryRunner
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(runner *QueryRunner) *GraphHandler {
	return &GraphHandler{QueryRunner: runner}
}

// NodeAttributes handles GET /graph/node-attributes
func (h *GraphHandler) NodeAttributes(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, queries.NodeAttributesParams{
		UID: r.URL.Query().Get("uid"),
	})
}

// NodeNeighbors handles GET /graph/node-neighbors
func (h *GraphHandler) NodeNeighbors(w http.ResponseWriter, r *http.Request) {
	depth := 2
	if raw := r.URL.Query().Get("depth"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			depth = parsed
		} else {
			depth = 0 // validation reports the range error
		}
	}
	h.run(w, r, queries.NodeNeighborsParams{
		UID:   r.URL.Query().Get("uid"),
		Depth: depth,
	})
}
