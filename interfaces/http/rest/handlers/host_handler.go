package handlers

import (
	"net/http"

	"granefapi/application/queries"
)

// HostHandler serves host-centric queries
type HostHandler struct {
	*QueryRunner
}

// NewHostHandler creates a new host handler
func NewHostHandler(runner *QueryRunner) *HostHandler {
	return &HostHandler{QueryRunner: runner}
}

// Communicated handles GET /hosts/communicated
func (h *HostHandler) Communicated(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, queries.HostsCommunicatedParams{
		HostIP: r.URL.Query().Get("host_ip"),
	})
}

// ConnectionsFromTo handles GET /hosts/connections-from-to
func (h *HostHandler) ConnectionsFromTo(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, queries.ConnectionsFromToParams{
		HostIP: r.URL.Query().Get("host_ip"),
		FromTS: r.URL.Query().Get("from_ts_val"),
		ToTS:   r.URL.Query().Get("to_ts_val"),
	})
}

// OriginatedConnections handles GET /hosts/originated-connections
func (h *HostHandler) OriginatedConnections(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, queries.OriginatedConnectionsParams{
		HostIP:     r.URL.Query().Get("host_ip"),
		FilterFunc: r.URL.Query().Get("chosen_func"),
		Attribute:  r.URL.Query().Get("conn_attribute"),
		Value:      r.URL.Query().Get("value"),
	})
}
