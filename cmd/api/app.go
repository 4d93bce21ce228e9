package main

import (
	"context"
	"net/http"
	"time"

	"handoff-address/internal/handlers"
	"handoff-address/internal/middleware"
	"handoff-address/internal/repositories"
	"handoff-address/internal/services"
	"handoff-address/internal/transformers"
	"handoff-address/pkg/cache"
	"handoff-address/pkg/config"
	"handoff-address/pkg/logger"
	"handoff-address/pkg/metrics"
	"handoff-address/pkg/places"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// App represents the application structure
type App struct {
	Config         *config.Config
	Router         *gin.Engine
	AddressHandler *handlers.AddressHandler
	RateLimiter    *middleware.RateLimiter
	Server         *http.Server

	redis  *redis.Client
	cancel context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeMetrics()
	placeCache, err := app.initializeCache()
	if err != nil {
		return nil, err
	}
	provider := app.initializePlaces()

	app.build(provider, placeCache)
	return app, nil
}

// build wires the business logic and web layer on top of the infrastructure.
func (a *App) build(provider places.Provider, placeCache repositories.PlaceCache) {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	a.initializeRateLimiter(ctx)
	a.initializeDependencies(provider, placeCache)
	a.initializeRouter()
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the Redis cache, or a no-op cache when Redis is disabled
func (a *App) initializeCache() (repositories.PlaceCache, error) {
	if !a.Config.Redis.Enabled {
		logger.GlobalLogger.Println("Redis disabled, place lookups are not cached")
		return repositories.NewNoopPlaceCache(), nil
	}

	client, err := cache.NewRedisClient(context.Background(), cache.RedisConfigFrom(a.Config))
	if err != nil {
		return nil, err
	}
	a.redis = client
	return repositories.NewPlaceCache(cache.NewStore(client)), nil
}

// initialize the places provider client
func (a *App) initializePlaces() places.Provider {
	return places.NewClient(places.Options{
		BaseURL: a.Config.Places.BaseURL,
		APIKey:  a.Config.Places.APIKey,
		Country: a.Config.Places.Country,
		Types:   a.Config.Places.Types,
		Timeout: a.Config.Places.Timeout,
	})
}

// initialize the rate limiter
func (a *App) initializeRateLimiter(ctx context.Context) {
	a.RateLimiter = middleware.NewRateLimiter(middleware.PerMinute(a.Config.RateLimit.PerMinute), a.Config.RateLimit.Burst)
	go a.RateLimiter.Cleanup(ctx, 10*time.Minute, time.Hour)
}

// initialize all dependencies
func (a *App) initializeDependencies(provider places.Provider, placeCache repositories.PlaceCache) {
	addrTrans := transformers.NewAddressTransformer()

	addressService := services.NewAddressService(addrTrans, provider, placeCache, services.AddressServiceConfig{
		Country:       a.Config.Places.Country,
		PlaceTTL:      a.Config.Redis.PlaceTTL,
		FallbackRetry: a.Config.Modes.FallbackRetry,
	})

	a.AddressHandler = handlers.NewAddressHandler(addressService, a.Config.StrictDefault())
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	if a.Config.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.cancel != nil {
		a.cancel()
	}
	cache.CloseRedis(a.redis)
}
