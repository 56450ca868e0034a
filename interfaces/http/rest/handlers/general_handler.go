package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"granefapi/application/queries"
	"granefapi/infrastructure/config"
	"granefapi/infrastructure/dgraph"
	"granefapi/pkg/common"
	apperrors "granefapi/pkg/errors"
)

// APIName and APIVersion identify the service in the root document
const (
	APIName    = "Granef API"
	APIVersion = "0.3"
)

// GeneralHandler serves the informational endpoints, the store
// connection endpoint, and custom queries
type GeneralHandler struct {
	*QueryRunner
	store  *dgraph.Client
	cfg    *config.Config
	logger *zap.Logger
}

// NewGeneralHandler creates a new general handler
func NewGeneralHandler(runner *QueryRunner, store *dgraph.Client, cfg *config.Config, logger *zap.Logger) *GeneralHandler {
	return &GeneralHandler{
		QueryRunner: runner,
		store:       store,
		cfg:         cfg,
		logger:      logger,
	}
}

// Root handles GET /
func (h *GeneralHandler) Root(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"name":    APIName,
		"version": APIVersion,
	})
}

// Connect handles GET /connect. The connection is established at
// startup; callers use this endpoint to re-establish it after a store
// outage.
func (h *GeneralHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Connect(r.Context(), h.cfg.DgraphAddress); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondDetail(w, http.StatusOK, "connected to graph store")
}

// Custom handles POST /query/custom
func (h *GeneralHandler) Custom(w http.ResponseWriter, r *http.Request) {
	var params queries.CustomQueryParams
	if err := common.ParseJSONBody(r, &params, 1<<20); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("request body is not a valid custom query"))
		return
	}
	h.runWithMode(w, r, params, params.Type, params.Layout)
}
