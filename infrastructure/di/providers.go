package di

import (
	"go.uber.org/zap"

	"granefapi/application/ports"
	"granefapi/application/services"
	"granefapi/infrastructure/config"
	"granefapi/infrastructure/dgraph"
	"granefapi/infrastructure/layout"
	apperrors "granefapi/pkg/errors"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideStoreClient creates the graph store client. The client starts
// unconnected; cmd/api connects it eagerly and /connect reconnects.
func ProvideStoreClient(cfg *config.Config, logger *zap.Logger) *dgraph.Client {
	return dgraph.NewClient(cfg.MaxMessageSize, logger)
}

// ProvideLayoutProviders creates the named layout strategies
func ProvideLayoutProviders(cfg *config.Config) map[string]ports.LayoutProvider {
	return map[string]ports.LayoutProvider{
		"force_directed": layout.NewForceDirected(cfg.LayoutIterations, cfg.LayoutScale),
		"grid":           layout.NewGrid(cfg.LayoutScale),
	}
}

// ProvideQueryService creates the query service
func ProvideQueryService(
	store *dgraph.Client,
	layouts map[string]ports.LayoutProvider,
	cfg *config.Config,
	logger *zap.Logger,
) *services.QueryService {
	return services.NewQueryService(store, layouts, cfg.LayoutMaxNodes, logger)
}

// ProvideErrorHandler creates the HTTP error handler
func ProvideErrorHandler(logger *zap.Logger) *apperrors.ErrorHandler {
	return apperrors.NewErrorHandler(logger)
}
