package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"omi-relay/internal/model"
	"omi-relay/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.CustomRecovery(srv.recoverPanic))
	srv.gin.Use(srv.mw.RequestID(), srv.mw.AccessLog())
	if srv.metrics != nil {
		srv.gin.Use(srv.metrics.Middleware())
	}

	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoRoute(response.NotFound)
	srv.gin.NoMethod(response.MethodNotAllowed)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

// recoverPanic turns a handler panic into the generic 500 envelope.
func (srv HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	srv.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
	response.InternalError(c, fmt.Errorf("panic: %v", recovered))
	c.Abort()
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	root := srv.gin.Group("")

	if err := srv.setupRelayDomain(ctx, root); err != nil {
		return err
	}

	if srv.memoryUC != nil {
		if err := srv.setupMemoryDomain(ctx, root); err != nil {
			return err
		}
	} else {
		srv.l.Infof(ctx, "Memory store disabled, skipping /memories routes")
	}

	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
