// Package handlers contains the HTTP handlers for the query API. Every
// query endpoint follows the same shape: validate parameters, build the
// store query, hand it to the query service with the caller's type and
// layout selectors, and wrap the result in the response envelope.
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"granefapi/application/queries"
	"granefapi/application/services"
	"granefapi/pkg/common"
	apperrors "granefapi/pkg/errors"
)

// queryBuilder is implemented by every query params struct
type queryBuilder interface {
	Build() (queries.Request, error)
}

// QueryRunner executes a built query with the request's cross-cutting
// selectors and writes the enveloped result
type QueryRunner struct {
	service *services.QueryService
	errors  *apperrors.ErrorHandler
	logger  *zap.Logger
}

// NewQueryRunner creates a query runner shared by the query handlers
func NewQueryRunner(service *services.QueryService, errorHandler *apperrors.ErrorHandler, logger *zap.Logger) *QueryRunner {
	return &QueryRunner{
		service: service,
		errors:  errorHandler,
		logger:  logger,
	}
}

// run builds and executes the query, honoring the type and layout
// parameters of the request
func (q *QueryRunner) run(w http.ResponseWriter, r *http.Request, b queryBuilder) {
	q.runWithMode(w, r, b, r.URL.Query().Get("type"), r.URL.Query().Get("layout"))
}

func (q *QueryRunner) runWithMode(w http.ResponseWriter, r *http.Request, b queryBuilder, mode, layout string) {
	request, err := b.Build()
	if err != nil {
		q.errors.Handle(w, r, err)
		return
	}

	result, err := q.service.Handle(r.Context(), services.Request{
		Query:  request,
		Mode:   mode,
		Layout: layout,
	})
	if err != nil {
		q.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
