package main

import (
	"github.com/gorilla/schema"

	"minesolver/internal/game"
	"minesolver/internal/player"
	"minesolver/internal/solver"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type NewGameParams struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

type PosParams struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

type MoveParams struct {
	X    int    `schema:"x,required"`
	Y    int    `schema:"y,required"`
	Move string `schema:"move,required"`
}

type gameSessionDTO struct {
	GameSessionId string    `json:"game_session_id"`
	Grid          game.Grid `json:"grid"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	MineCount     int       `json:"mine_count"`
	Dead          bool      `json:"dead"`
	Won           bool      `json:"won"`
	StartedAt     int64     `json:"started_at"`
	EndedAt       *int64    `json:"ended_at,omitempty"`
}

func newGameSessionDTO(s *gameSession) *gameSessionDTO {
	var endedAt *int64
	if s.EndedAt != nil {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	return &gameSessionDTO{
		GameSessionId: s.Id,
		Grid:          s.State.PlayerView(),
		Width:         s.State.Width,
		Height:        s.State.Height,
		MineCount:     s.State.MineCount,
		Dead:          s.State.Dead,
		Won:           s.State.Won,
		StartedAt:     s.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}

type solveStepDTO struct {
	Session *gameSessionDTO `json:"session"`
	Moves   []player.Move   `json:"moves"`
}

type solveResultDTO struct {
	Session *gameSessionDTO      `json:"session"`
	Status  string               `json:"status"`
	Actions []solver.Action      `json:"actions,omitempty"`
	Moves   []player.Move        `json:"moves,omitempty"`
	ByLayer map[solver.Layer]int `json:"by_layer,omitempty"`
}
