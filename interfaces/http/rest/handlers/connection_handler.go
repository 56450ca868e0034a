package handlers

import (
	"net/http"

	"granefapi/application/queries"
)

// ConnectionHandler serves connection-centric queries
type ConnectionHandler struct {
	*QueryRunner
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(runner *QueryRunner) *ConnectionHandler {
	return &ConnectionHandler{QueryRunner: runner}
}

// Search handles GET /connections/search
func (h *ConnectionHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, queries.ConnectionsSearchParams{
		SrcIP:  r.URL.Query().Get("src_ip"),
		DstIP:  r.URL.Query().Get("dst_ip"),
		FromTS: r.URL.Query().Get("timestamp_from"),
		ToTS:   r.URL.Query().Get("timestamp_to"),
	})
}
