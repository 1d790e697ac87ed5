package server

import (
	"context"
	"net"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Runner owns the actual listener bind. The wrapper resolves configuration
// and builds the application; the runner takes it from there.
type Runner interface {
	Run(ctx context.Context, app *fiber.App, settings Settings) error
}

// ListenRunner is the default Runner. It binds the resolved address and
// shuts the application down gracefully when the context is cancelled.
type ListenRunner struct {
	Logger *zap.Logger
}

func (r *ListenRunner) Run(ctx context.Context, app *fiber.App, settings Settings) error {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	addr := net.JoinHostPort(settings.Host, strconv.Itoa(settings.Port))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down server", zap.String("addr", addr))
		return app.Shutdown()
	}
}
