package di

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	httpctrl "github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/controller/http"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/middleware"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/observability"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/resilience"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/websocket"
)

// APIPrefix is the base path of every route
const APIPrefix = "/api/v1"

// RateLimitedRoutes are the public write routes throttled per client
var RateLimitedRoutes = []string{
	http.MethodPost + " " + APIPrefix + "/auth/login",
	http.MethodPost + " " + APIPrefix + "/contacts",
}

// HTTPServerModule provides HTTP server dependencies
var HTTPServerModule = fx.Module("http_server",
	fx.Provide(provideGinEngine),
	fx.Provide(provideHTTPServer),
	fx.Invoke(registerHTTPRoutes),
	fx.Invoke(startHTTPServer),
)

func provideGinEngine(
	app *config.AppConfig,
	cors *config.CORSConfig,
	metrics *observability.MetricsProvider,
	limiter *resilience.KeyedLimiter,
	logger *zap.Logger,
) *gin.Engine {
	if !app.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(middleware.CORSConfigFrom(*cors)))
	router.Use(observability.MetricsMiddleware(metrics))
	router.Use(middleware.RateLimit(limiter, logger, RateLimitedRoutes...))

	return router
}

func provideHTTPServer(cfg *config.ServerConfig, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// Controllers is a struct that holds all HTTP controllers for fx to inject
type Controllers struct {
	fx.In

	Auth      *httpctrl.AuthController
	Content   *httpctrl.ContentController
	About     *httpctrl.AboutController
	Home      *httpctrl.HomeController
	Blog      *httpctrl.BlogController
	Event     *httpctrl.EventController
	Contact   *httpctrl.ContactController
	System    *httpctrl.SystemController
	WebSocket *websocket.Handler
}

func registerHTTPRoutes(router *gin.Engine, controllers Controllers) {
	api := router.Group(APIPrefix)

	controllers.System.RegisterRoutes(api)
	controllers.Auth.RegisterRoutes(api)
	controllers.Content.RegisterRoutes(api)
	controllers.About.RegisterRoutes(api)
	controllers.Home.RegisterRoutes(api)
	controllers.Blog.RegisterRoutes(api)
	controllers.Event.RegisterRoutes(api)
	controllers.Contact.RegisterRoutes(api)
	controllers.WebSocket.RegisterRoutes(api)
}

func startHTTPServer(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting HTTP server", zap.String("address", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
