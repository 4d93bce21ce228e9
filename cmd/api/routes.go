package main

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"handoff-address/internal/handlers"
	"handoff-address/internal/middleware"
	"handoff-address/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.setupDebugRoutes()
	a.setupAPIRoutes()
}

// setupHealthCheck configures health check and metrics endpoints
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		if a.redis == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "redis": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := a.redis.Ping(ctx).Err(); err != nil {
			logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "redis": "ok"})
	})

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupDebugRoutes exposes pprof when debug mode is on
func (a *App) setupDebugRoutes() {
	if !a.Config.Modes.Debug {
		return
	}
	debug := a.Router.Group("/debug/pprof")
	debug.GET("/", gin.WrapF(pprof.Index))
	debug.GET("/cmdline", gin.WrapF(pprof.Cmdline))
	debug.GET("/profile", gin.WrapF(pprof.Profile))
	debug.GET("/symbol", gin.WrapF(pprof.Symbol))
	debug.GET("/trace", gin.WrapF(pprof.Trace))
	debug.GET("/:name", func(c *gin.Context) {
		pprof.Handler(c.Param("name")).ServeHTTP(c.Writer, c.Request)
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	addresses := a.Router.Group("/api/addresses")
	if a.Config.Auth.Disabled {
		logger.GlobalLogger.Printf("Authentication disabled for /api/addresses")
	} else {
		addresses.Use(middleware.AuthMiddleware(a.Config.Auth.JWTSecret))
	}
	handlers.RegisterAddressRoutes(addresses, a.AddressHandler)
}
