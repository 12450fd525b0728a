// Package schemabridge exposes the schema registry over HTTP: model
// descriptors and payload validation.
package schemabridge

import (
	"github.com/jrazmi/pollschema/core/schemas"
	"github.com/jrazmi/pollschema/infrastructure/web"
	"github.com/jrazmi/pollschema/sdk/logger"
)

// Config holds configuration for the schema bridge
type Config struct {
	Log        *logger.Logger
	Registry   *schemas.Registry
	Middleware []web.Middleware
}

// AddHttpRoutes registers the model routes on group.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Registry)

	group.GET("/health", b.httpHealth, cfg.Middleware...)
	group.GET("/models", b.httpListModels, cfg.Middleware...)
	group.GET("/models/{model}", b.httpGetModel, cfg.Middleware...)
	group.POST("/models/{model}/{shape}/validate", b.httpValidate, cfg.Middleware...)
	group.OPTIONS("/models/{model}/{shape}/validate", b.httpPreflight, cfg.Middleware...)
}
