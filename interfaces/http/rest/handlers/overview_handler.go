package handlers

import (
	"net/http"

	"granefapi/application/queries"
)

// OverviewHandler serves network overview queries
type OverviewHandler struct {
	*QueryRunner
}

// NewOverviewHandler creates a new overview handler
func NewOverviewHandler(runner *QueryRunner) *OverviewHandler {
	return &OverviewHandler{QueryRunner: runner}
}

// HostsInfo handles GET /overview/hosts-info
func (h *OverviewHandler) HostsInfo(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, queries.HostsInfoParams{
		Address: r.URL.Query().Get("address"),
	})
}
