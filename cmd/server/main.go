package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"

	"minesolver/internal/config"
	"minesolver/internal/middleware"
	"minesolver/internal/player"
	"minesolver/internal/solver"
)

func main() {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ws, err := config.NewWebSocket()
	if err != nil {
		logger.Error("failed to read ws config", "error", err)
		return
	}

	opt := config.SolverOptions()
	port := config.Port()

	app := &application{
		logger:   logger,
		sessions: newSessionStore(),
		ws:       ws,
		engine:   solver.New(opt),
		player:   player.New(opt),
		rnd:      createRand(),
	}
	server := &http.Server{
		Addr:         port,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler: middleware.Wrap(
			app.Routes(),
			middleware.Cors(),
			middleware.Logging(logger),
		),
	}

	errCh := make(chan error, 1)
	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to listen and serve: %w", err)
		}
		close(errCh)
	}()

	logger.Info(fmt.Sprintf("solver server listening at http://localhost%s", port))

	select {
	case <-ctx.Done():
		break
	case err := <-errCh:
		logger.Error("failed to start", slog.Any("error", err))
		os.Exit(1)
	}

	sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()

	server.Shutdown(sCtx)
}
