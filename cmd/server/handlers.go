package main

import (
	"errors"
	"log/slog"
	"net/http"

	"minesolver/internal/game"
	"minesolver/internal/player"
	"minesolver/internal/solver"
)

func (app *application) handleNewGame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var (
		gameParams NewGameParams
		posParams  PosParams
	)
	if err := dec.Decode(&gameParams, query); err != nil {
		app.badRequest(w)
		return
	}
	if err := dec.Decode(&posParams, query); err != nil {
		app.badRequest(w)
		return
	}
	params := game.GameParams(gameParams)
	if err := params.Validate(); err != nil {
		app.badRequest(w)
		return
	}
	if !params.PointInBounds(posParams.X, posParams.Y) {
		app.badRequest(w)
		return
	}
	state, err := game.NewGame(&params, posParams.X, posParams.Y, app.rnd)
	if err != nil {
		app.internalError(w, "unable to generate a new game", slog.Any("error", err))
		return
	}
	session := app.sessions.Create(state)
	app.replyWithJSON(w, newGameSessionDTO(session))
}

func (app *application) handleGetGame(w http.ResponseWriter, r *http.Request) {
	session, err := app.sessions.Get(r.PathValue("id"))
	if errors.Is(err, ErrNotFound) {
		app.notFound(w)
		return
	}
	app.replyWithJSON(w, newGameSessionDTO(session))
}

func (app *application) handleMove(w http.ResponseWriter, r *http.Request) {
	var moveParams MoveParams
	if err := dec.Decode(&moveParams, r.URL.Query()); err != nil {
		app.badRequest(w)
		return
	}
	session, err := app.sessions.Update(r.PathValue("id"), func(s *gameSession) error {
		if s.State.Dead || s.State.Won {
			return nil
		}
		if !s.State.PointInBounds(moveParams.X, moveParams.Y) {
			return errors.New("cell out of bounds")
		}
		switch moveParams.Move {
		case "open":
			s.State.OpenCell(moveParams.X, moveParams.Y)
		case "flag":
			s.State.FlagCell(moveParams.X, moveParams.Y)
		case "chord":
			s.State.ChordCell(moveParams.X, moveParams.Y)
		default:
			return errors.New("unknown move")
		}
		if s.State.Dead || s.State.Won {
			s.State.RevealMines()
			s.finish()
		}
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		app.notFound(w)
		return
	} else if err != nil {
		app.badRequest(w)
		return
	}
	app.replyWithJSON(w, newGameSessionDTO(session))
}

func (app *application) handleForfeit(w http.ResponseWriter, r *http.Request) {
	session, err := app.sessions.Update(r.PathValue("id"), func(s *gameSession) error {
		s.State.RevealMines()
		s.finish()
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		app.notFound(w)
		return
	}
	app.replyWithJSON(w, newGameSessionDTO(session))
}

// handleStep applies the single best move batch the strategies can
// find right now and reports what was done.
func (app *application) handleStep(w http.ResponseWriter, r *http.Request) {
	var moves []player.Move
	session, err := app.sessions.Update(r.PathValue("id"), func(s *gameSession) error {
		if s.State.Dead || s.State.Won {
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
		}
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		app.notFound(w)
		return
	} else if err != nil {
		app.internalError(w, "solver step failed", slog.Any("error", err))
		return
	}
	app.replyWithJSON(w, solveStepDTO{
		Session: newGameSessionDTO(session),
		Moves:   moves,
	})
}

// handleSolve plays the session out to the end and reports the outcome
// with a per-layer move breakdown.
func (app *application) handleSolve(w http.ResponseWriter, r *http.Request) {
	var outcome player.Outcome
	session, err := app.sessions.Update(r.PathValue("id"), func(s *gameSession) error {
		if s.State.Dead || s.State.Won {
			return nil
		}
		var err error
		outcome, err = app.player.Play(s.State)
		if err != nil {
			return err
		}
		s.State.RevealMines()
		s.finish()
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		app.notFound(w)
		return
	} else if err != nil {
		app.internalError(w, "autoplay failed", slog.Any("error", err))
		return
	}
	app.replyWithJSON(w, solveResultDTO{
		Session: newGameSessionDTO(session),
		Status:  solveStatus(session.State),
		Moves:   outcome.Moves,
		ByLayer: outcome.ByLayer(),
	})
}

func solveStatus(s *game.GameState) string {
	switch {
	case s.Won:
		return "won"
	case s.Dead:
		return "lost"
	default:
		return "in progress"
	}
}

// handleAdvise runs the engine against the current board and returns
// its suggestions without touching the session.
func (app *application) handleAdvise(w http.ResponseWriter, r *http.Request) {
	session, err := app.sessions.Get(r.PathValue("id"))
	if errors.Is(err, ErrNotFound) {
		app.notFound(w)
		return
	}
	res, err := app.engine.Solve(solver.SnapshotOf(session.State))
	if err != nil && !errors.Is(err, solver.ErrNoLegalMove) {
		app.internalError(w, "advise failed", slog.Any("error", err))
		return
	}
	app.replyWithJSON(w, solveResultDTO{
		Session: newGameSessionDTO(session),
		Status:  res.Status.String(),
		Actions: res.Actions,
	})
}
