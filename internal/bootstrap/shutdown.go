package bootstrap

import (
	"context"

	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/server"
	"github.com/osse101/PrizeDraw_Go/internal/session"
	"github.com/osse101/PrizeDraw_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server     *server.Server
	Controller *session.Controller
	Handlers   *EventHandlers
	Hub        *sse.Hub
	Storage    *Storage
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Controller (cancel any roll, nothing is committed)
// 3. Event stream, announcer and overlay (flush pending winners)
// 4. Storage connections
//
// Errors are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Controller != nil {
		logger.Info(LogMsgShuttingDownController)
		c.Controller.Close(ctx)
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Handlers != nil {
		logger.Info(LogMsgShuttingDownHandlers)
		if err := c.Handlers.Close(ctx); err != nil {
			logger.Error(LogMsgHandlersFailed, "error", err)
		}
	}

	if c.Storage != nil {
		if err := c.Storage.Close(ctx); err != nil {
			logger.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	logger.Info(LogMsgServerStopped)
}
