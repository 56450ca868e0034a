package di

import (
	"go.uber.org/zap"

	"granefapi/application/services"
	"granefapi/infrastructure/config"
	"granefapi/infrastructure/dgraph"
	apperrors "granefapi/pkg/errors"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	StoreClient  *dgraph.Client
	QueryService *services.QueryService
	ErrorHandler *apperrors.ErrorHandler
}
