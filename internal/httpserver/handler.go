package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.gin.NoRoute(func(c *gin.Context) {
		response.NotFound(c, fmt.Sprintf("Route %s not found", c.Request.URL.Path))
	})

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.AccessLog())
	srv.gin.Use(srv.mw.CORS())

	srv.l.Infof(context.Background(), "httpserver: environment=%s mode=%s transcription=%t calendar=%t",
		srv.environment, srv.mode, srv.transcriber != nil, srv.calendar != nil)
	if srv.environment == string(model.EnvironmentProduction) && srv.mode == gin.DebugMode {
		srv.l.Warnf(context.Background(), "httpserver: gin debug mode in production")
	}
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
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	if err := srv.setupTaskDomain(ctx, api, srv.mw); err != nil {
		return err
	}

	return nil
}
