package main

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"minesolver/internal/player"
)

// handleWatch upgrades to a websocket and streams autoplay, one
// strategy batch per message, until the game ends.
func (app *application) handleWatch(w http.ResponseWriter, r *http.Request) {
	if _, err := app.sessions.Get(r.PathValue("id")); errors.Is(err, ErrNotFound) {
		app.notFound(w)
		return
	}

	c, err := app.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logger.Error("upgrade failed", slog.Any("error", err))
		return
	}
	defer c.Close()

	id := r.PathValue("id")
	for {
		var (
			moves []player.Move
			done  bool
		)
		session, err := app.sessions.Update(id, func(s *gameSession) error {
			if s.State.Dead || s.State.Won {
				done = true
				return nil
			}
			var err error
			moves, err = app.player.Step(s.State)
			if err != nil {
				return err
			}
			if s.State.Dead || s.State.Won {
				s.State.RevealMines()
				s.finish()
				done = true
			}
			return nil
		})
		if err != nil {
			app.logger.Error("autoplay step failed", slog.Any("error", err))
			return
		}

		message := solveStepDTO{
			Session: newGameSessionDTO(session),
			Moves:   moves,
		}
		if err := c.WriteJSON(message); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				app.logger.Warn("write failed", slog.Any("error", err))
			}
			return
		}
		if done {
			c.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			)
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}
