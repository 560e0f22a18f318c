package httpapp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type App struct {
	log    *zap.Logger
	server *http.Server
}

func New(log *zap.Logger, host string, port int, handler http.Handler, readTimeout, writeTimeout time.Duration) *App {
	return &App{
		log: log,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      otelhttp.NewHandler(handler, "price-proxy"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}
}

func (a *App) Run() error {
	const op = "httpapp.Run"

	l, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return a.Serve(l)
}

// Serve returns nil once Stop has closed the server.
func (a *App) Serve(l net.Listener) error {
	const op = "httpapp.Serve"

	a.log.Info("http server started", zap.String("addr", l.Addr().String()))

	if err := a.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *App) Stop(ctx context.Context) error {
	a.log.Info("stopping http server", zap.String("addr", a.server.Addr))

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("httpapp.Stop: %w", err)
	}

	return nil
}
