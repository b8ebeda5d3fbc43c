package pattern

// Base orientation for every template puts the covered strip above the
// numbers (negative DY) and reads the numbers left to right. The other
// three orientations come from rotation at init.
var baseTemplates = []Template{
	{
		// 1-2-1 over three covered cells: the outer cells are
		// mines, the middle is safe.
		Name: "1-2-1",
		Numbers: map[Offset]int{
			{-1, 0}: 1, {0, 0}: 2, {1, 0}: 1,
		},
		Hidden: []Offset{{-1, -1}, {0, -1}, {1, -1}},
		Mines:  []Offset{{-1, -1}, {1, -1}},
		Safes:  []Offset{{0, -1}},
	},
	{
		// 1-2-2-1 over four covered cells: the inner pair are
		// mines, the outer pair are safe.
		Name: "1-2-2-1",
		Numbers: map[Offset]int{
			{-1, 0}: 1, {0, 0}: 2, {1, 0}: 2, {2, 0}: 1,
		},
		Hidden: []Offset{{-1, -1}, {0, -1}, {1, -1}, {2, -1}},
		Mines:  []Offset{{0, -1}, {1, -1}},
		Safes:  []Offset{{-1, -1}, {2, -1}},
	},
	{
		// 1-2 with three covered cells above: the 1 accounts for
		// the shared pair, so the far cell next to the 2 is a
		// mine.
		Name: "1-2",
		Numbers: map[Offset]int{
			{-1, 0}: 1, {0, 0}: 2,
		},
		Hidden: []Offset{{-1, -1}, {0, -1}, {1, -1}},
		Mines:  []Offset{{1, -1}},
	},
	{
		// 1-1 whose left number only reaches the shared pair: the
		// pair holds the mine, so the cell past the right number
		// is safe.
		Name: "1-1",
		Numbers: map[Offset]int{
			{0, 0}: 1, {1, 0}: 1,
		},
		Hidden: []Offset{{0, -1}, {1, -1}, {2, -1}},
		Safes:  []Offset{{2, -1}},
	},
	{
		// Stacked 1s with a covered pocket: the lower 1 pins the
		// mine to the side pair, clearing the top row.
		Name: "H1",
		Numbers: map[Offset]int{
			{0, 0}: 1, {0, 1}: 1,
		},
		Hidden: []Offset{{-1, 0}, {1, 0}, {-1, -1}, {0, -1}, {1, -1}},
		Safes:  []Offset{{-1, -1}, {0, -1}, {1, -1}},
	},
}
