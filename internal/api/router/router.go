package router

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/hertz-contrib/keyauth"

	"ats-checker/internal/api/handler"
	"ats-checker/internal/config"
	"ats-checker/internal/constants"
)

// Register wires middleware and routes onto the server.
func Register(h *server.Hertz, cfg *config.Config, analyzeHandler *handler.AnalyzeHandler) {
	h.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.Server.APIKey != "" {
		apiKey := cfg.Server.APIKey
		h.Use(keyauth.New(
			keyauth.WithKeyLookUp("header:X-API-Key", ""),
			keyauth.WithErrorHandler(func(c context.Context, ctx *app.RequestContext, err error) {
				ctx.JSON(consts.StatusUnauthorized, utils.H{"detail": "invalid or missing API key"})
				ctx.Abort()
			}),
			keyauth.WithFilter(func(c context.Context, ctx *app.RequestContext) bool {
				// Health and status stay open for probes.
				path := string(ctx.Path())
				return path == "/api/health" || path == "/api/"
			}),
			keyauth.WithValidator(func(c context.Context, ctx *app.RequestContext, key string) (bool, error) {
				return key == apiKey, nil
			}),
		))
	}

	api := h.Group("/api")

	api.GET("/", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{
			"message": "ATS Resume Checker API is running",
		})
	})

	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{
			"status":  "healthy",
			"service": constants.ServiceName,
			"version": constants.ServiceVersion,
		})
	})

	api.POST("/analyze", analyzeHandler.HandleAnalyze)
}
