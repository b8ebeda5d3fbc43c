package solver

import (
	"slices"
)

// Component is a maximal group of constraints connected transitively by
// shared cells. Components partition the constrained cells, which is
// what makes per-component enumeration independent and sound.
type Component struct {
	Constraints []Constraint
	Cells       []int // union of constraint cells, sorted ascending
}

// SplitComponents partitions constraints into components via union-find
// keyed on shared cells. Components are ordered by the index of their
// first constraint and variables inside a component are sorted, so the
// partition is a pure function of the constraint set.
func SplitComponents(constraints []Constraint) []Component {
	n := len(constraints)
	if n == 0 {
		return nil
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(i int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]] /* path halving */
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if ra > rb {
			ra, rb = rb, ra
		}
		parent[rb] = ra
	}

	owner := make(map[int]int) // cell -> first constraint referencing it
	for i, c := range constraints {
		for _, cell := range c.Cells {
			if j, ok := owner[cell]; ok {
				union(i, j)
			} else {
				owner[cell] = i
			}
		}
	}

	groups := make(map[int]*Component)
	var order []int
	for i, c := range constraints {
		root := find(i)
		comp, ok := groups[root]
		if !ok {
			comp = &Component{}
			groups[root] = comp
			order = append(order, root)
		}
		comp.Constraints = append(comp.Constraints, c)
		comp.Cells = append(comp.Cells, c.Cells...)
	}

	components := make([]Component, 0, len(order))
	for _, root := range order {
		comp := groups[root]
		slices.Sort(comp.Cells)
		comp.Cells = slices.Compact(comp.Cells)
		components = append(components, *comp)
	}
	return components
}

// VarIndex returns the position of cell within the component's sorted
// variable list, or -1.
func (c Component) VarIndex(cell int) int {
	i, ok := slices.BinarySearch(c.Cells, cell)
	if !ok {
		return -1
	}
	return i
}
