package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/observability"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/websocket"
)

// WebSocketModule provides the change notification hub and its HTTP handler
var WebSocketModule = fx.Module("websocket",
	fx.Provide(
		provideHub,
		provideWebSocketHandler,
	),
	fx.Invoke(runHub),
)

func provideHub(metrics *observability.MetricsProvider, logger *zap.Logger) *websocket.Hub {
	return websocket.NewHub(logger, metrics)
}

func provideWebSocketHandler(
	cfg *config.WebSocketConfig,
	cors *config.CORSConfig,
	hub *websocket.Hub,
	logger *zap.Logger,
) *websocket.Handler {
	return websocket.NewHandler(*cfg, *cors, hub, logger)
}

// runHub runs the hub for the app's lifetime. It runs even with the endpoint
// disabled so publishers never block.
func runHub(lc fx.Lifecycle, hub *websocket.Hub, logger *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(stopped)
				hub.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			logger.Info("Stopping WebSocket hub")
			cancel()
			select {
			case <-stopped:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
