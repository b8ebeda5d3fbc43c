// source: https://git.tartarus.org/simon/puzzles.git/mines.c

package game

import (
	"bytes"
	"encoding/gob"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameState struct {
	Dead, Won  bool
	Mines      []bool /* real mine positions */
	PlayerGrid Grid   /* player knowledge */
	GameParams
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var g GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&g)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewGame generates a random mine field and opens the starting cell,
// which is guaranteed mine-free.
func NewGame(params *GameParams, x, y int, r *rand.Rand) (*GameState, error) {
	field, err := params.newMineField(x, y, r)
	if err != nil {
		return nil, err
	}
	playerGrid := make(Grid, len(field))
	for i := range playerGrid {
		playerGrid[i] = Unknown
	}
	state := &GameState{
		GameParams: *params,
		Mines:      field,
		PlayerGrid: playerGrid,
	}
	state.OpenCell(x, y)
	Log.WithFields(logrus.Fields{
		"seed": params.Seed(), "x": x, "y": y,
	}).Debug("new game")
	return state, nil
}

func (s *GameState) mineAt(x, y int) bool {
	return s.Mines[y*s.Width+x]
}

func (s *GameState) neighborMines(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if s.PointInBounds(x+dx, y+dy) && s.mineAt(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// OpenCell opens (x, y). Returns -1 if the cell was mined (the game is
// lost), 0 otherwise. Opening a zero-neighbour cell cascades.
func (s *GameState) OpenCell(x, y int) int {
	i := y*s.Width + x
	if s.PlayerGrid[i] != Unknown && s.PlayerGrid[i] != Question {
		return 0
	}
	if s.Mines[i] {
		/*
		 * The player has landed on a mine. Expose the mine that
		 * killed them, but not the rest.
		 */
		s.Dead = true
		s.PlayerGrid[i] = ExplodedMine
		return -1
	}

	s.PlayerGrid[i] = todo

	/*
	 * Repeatedly scan the grid for todo cells and open them; a cell
	 * that opens to zero marks all its unopened neighbours todo.
	 */
	for {
		doneSomething := false
		for yy := range s.Height {
			for xx := range s.Width {
				if s.PlayerGrid[yy*s.Width+xx] != todo {
					continue
				}
				v := s.neighborMines(xx, yy)
				s.PlayerGrid[yy*s.Width+xx] = CellState(v)
				if v == 0 {
					for dy := -1; dy <= 1; dy++ {
						for dx := -1; dx <= 1; dx++ {
							nx, ny := xx+dx, yy+dy
							if s.PointInBounds(nx, ny) &&
								s.PlayerGrid[ny*s.Width+nx] == Unknown {
								s.PlayerGrid[ny*s.Width+nx] = todo
							}
						}
					}
				}
				doneSomething = true
			}
		}
		if !doneSomething {
			break
		}
	}

	/*
	 * Scan the grid and see if exactly as many cells are still
	 * covered as there are mines. If so the game is won; fill in
	 * mine markers on all covered cells.
	 */
	ncovered := 0
	for _, c := range s.PlayerGrid {
		if c < 0 {
			ncovered++
		}
	}
	if ncovered == s.MineCount {
		for i := range s.PlayerGrid {
			if s.PlayerGrid[i] == Unknown || s.PlayerGrid[i] == Question {
				s.PlayerGrid[i] = UnflaggedMine
			}
		}
		s.Won = true
	}

	return 0
}

// FlagCell toggles the flag on a covered cell.
func (s *GameState) FlagCell(x, y int) {
	i := y*s.Width + x
	switch s.PlayerGrid[i] {
	case Unknown, Question:
		s.PlayerGrid[i] = Flagged
	case Flagged:
		s.PlayerGrid[i] = Unknown
	}
}

// ChordCell opens every unflagged neighbour of a revealed number whose
// flag count already matches it.
func (s *GameState) ChordCell(x, y int) {
	i := y*s.Width + x
	if !s.PlayerGrid[i].Revealed() {
		return
	}
	c := int(s.PlayerGrid[i])
	js := make([]int, 0, 8)
	m := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && s.PointInBounds(x+dx, y+dy) {
				j := (y+dy)*s.Width + (x + dx)
				if s.PlayerGrid[j] == Flagged {
					m++
				} else if s.PlayerGrid[j] == Unknown {
					js = append(js, j)
				}
			}
		}
	}
	if c == m {
		for _, j := range js {
			s.OpenCell(j%s.Width, j/s.Width)
			if s.Dead || s.Won {
				return
			}
		}
	}
}

// RevealMines ends the game (as lost, unless already won) and exposes
// the full grid, marking correct and incorrect flags.
func (s *GameState) RevealMines() {
	if !(s.Dead || s.Won) {
		s.Dead = true
	}
	for i := range s.Mines {
		switch s.PlayerGrid[i] {
		case Flagged:
			if s.Mines[i] {
				s.PlayerGrid[i] = CorrectlyFlagged
			} else {
				s.PlayerGrid[i] = FalselyFlagged
			}
		case Unknown, Question:
			if s.Mines[i] {
				s.PlayerGrid[i] = UnflaggedMine
			} else {
				s.PlayerGrid[i] = CellState(s.neighborMines(i%s.Width, i/s.Width))
			}
		}
	}
}

func (s *GameState) FlagCount() (n int) {
	for _, c := range s.PlayerGrid {
		if c == Flagged {
			n++
		}
	}
	return
}

func (s *GameState) HiddenCount() (n int) {
	for _, c := range s.PlayerGrid {
		if c == Unknown || c == Question {
			n++
		}
	}
	return
}

// PlayerView returns a copy of the player-visible grid.
func (s *GameState) PlayerView() Grid {
	view := make(Grid, len(s.PlayerGrid))
	copy(view, s.PlayerGrid)
	return view
}
