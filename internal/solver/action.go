package solver

type ActionKind int8

const (
	ActionReveal ActionKind = iota
	ActionFlag
)

func (k ActionKind) String() string {
	switch k {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Layer identifies which strategy produced an action. The tag travels
// with the action itself; there is no shared bookkeeping of who acted.
type Layer int8

const (
	LayerRules         Layer = 1 // single-cell arithmetic rules
	LayerPattern       Layer = 2 // geometric pattern templates
	LayerCSP           Layer = 3 // deterministic constraint solving
	LayerProbabilistic Layer = 4 // probabilistic guessing
)

func (l Layer) String() string {
	switch l {
	case LayerRules:
		return "rules"
	case LayerPattern:
		return "pattern"
	case LayerCSP:
		return "csp"
	case LayerProbabilistic:
		return "probabilistic"
	default:
		return "unknown"
	}
}

// Action is a single move recommendation emitted to the orchestrator.
type Action struct {
	Kind  ActionKind `json:"kind"`
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Layer Layer      `json:"layer"`
}

// Deduction is a verdict that held across every solution of the cell's
// component. Cell is a row-major index into the board grid.
type Deduction struct {
	Cell int
	Mine bool
}

func (d Deduction) Action(width int) Action {
	kind := ActionReveal
	if d.Mine {
		kind = ActionFlag
	}
	return Action{
		Kind:  kind,
		X:     d.Cell % width,
		Y:     d.Cell / width,
		Layer: LayerCSP,
	}
}
