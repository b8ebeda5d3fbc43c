package game

import (
	"fmt"
	"math/rand/v2"
)

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// newMineField places p.MineCount mines at random, none of them at
// (startX, startY) or within one cell of it, so that the opening click
// always cascades.
func (p GameParams) newMineField(startX, startY int, r *rand.Rand) ([]bool, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	field := make([]bool, p.CellCount())

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, p.CellCount())
	for y := range p.Height {
		for x := range p.Width {
			if absDiff(startY, y) > 1 || absDiff(startX, x) > 1 {
				candidates = append(candidates, y*p.Width+x)
			}
		}
	}

	if len(candidates) < p.MineCount {
		return nil, fmt.Errorf("not enough room for %d mines", p.MineCount)
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range p.MineCount {
		i := r.IntN(k)
		field[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return field, nil
}
