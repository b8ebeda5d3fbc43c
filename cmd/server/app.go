package main

import (
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"minesolver/internal/config"
	"minesolver/internal/player"
	"minesolver/internal/solver"
)

type application struct {
	logger   *slog.Logger
	sessions *sessionStore
	ws       *config.WebSocket
	engine   *solver.Engine
	player   *player.Player
	rnd      *rand.Rand
}

func (app *application) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /game", app.handleNewGame)
	mux.HandleFunc("GET /game/{id}", app.handleGetGame)
	mux.HandleFunc("POST /game/{id}/move", app.handleMove)
	mux.HandleFunc("POST /game/{id}/forfeit", app.handleForfeit)
	mux.HandleFunc("POST /game/{id}/solve", app.handleSolve)
	mux.HandleFunc("POST /game/{id}/step", app.handleStep)
	mux.HandleFunc("GET /game/{id}/advise", app.handleAdvise)
	mux.HandleFunc("GET /game/{id}/watch", app.handleWatch)

	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return mux
}

func (app *application) badRequest(w http.ResponseWriter) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("Bad request"))
}

func (app *application) notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Not found"))
}

func (app *application) internalError(w http.ResponseWriter, msg string, args ...any) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("Internal error"))
	app.logger.Error(msg, args...)
}

func (app *application) replyWithJSON(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		app.internalError(w, "failed to marshal json", slog.Any("error", err))
		return
	}
	w.Header().Add("Content-Type", "application/json")
	_, err = w.Write(payload)
	if err != nil {
		w.Header().Del("Content-Type")
		app.logger.Error(
			"failed to send data", slog.Any("data", v), slog.Any("error", err),
		)
	}
}
