package solver

import (
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var Log = logrus.New()

// Options is the engine's full configuration surface.
type Options struct {
	MaxSolutions      int     // per-component recorded-solution cap
	MaxNodes          int     // per-component explored-node budget
	SafeThreshold     float64 // max acceptable guess probability
	InfoGain          bool    // prefer informative near-ties
	InfoGainTolerance float64
	Workers           int // concurrent component enumerations
}

func DefaultOptions() Options {
	return Options{
		MaxSolutions:      DefaultMaxSolutions,
		MaxNodes:          DefaultMaxNodes,
		SafeThreshold:     0.35,
		InfoGain:          false,
		InfoGainTolerance: 0.05,
		Workers:           runtime.NumCPU(),
	}
}

type Status int8

const (
	// StatusNoConstraints means the board has no revealed numbered
	// cell with hidden neighbours; there is nothing to reason about.
	StatusNoConstraints Status = iota
	// StatusStalled means constraints exist but no certain deduction
	// does.
	StatusStalled
	// StatusDeduced means at least one certain deduction was found.
	StatusDeduced
	// StatusGuessed means the result carries a single probabilistic
	// guess.
	StatusGuessed
)

func (s Status) String() string {
	switch s {
	case StatusNoConstraints:
		return "no constraints"
	case StatusStalled:
		return "stalled"
	case StatusDeduced:
		return "deduced"
	case StatusGuessed:
		return "guessed"
	default:
		return "unknown"
	}
}

// Result is one engine pass over one snapshot. Nothing in it refers
// back to the board; the caller applies Actions and re-invokes.
type Result struct {
	Status        Status
	Actions       []Action
	Deductions    []Deduction
	Contradictory []int // component indexes with zero solutions
	Capped        []int // component indexes that hit a limit
}

type Engine struct {
	opt Options
}

func New(opt Options) *Engine {
	if opt.Workers <= 0 {
		opt.Workers = runtime.NumCPU()
	}
	return &Engine{opt: opt}
}

// enumerateAll runs per-component enumerations concurrently. Components
// reference disjoint cells, so the workers share nothing; results land
// in a slice indexed by component discovery order, which keeps the
// overall output independent of scheduling.
func (e *Engine) enumerateAll(components []Component) []Enumeration {
	lim := Limits{MaxSolutions: e.opt.MaxSolutions, MaxNodes: e.opt.MaxNodes}
	enums := make([]Enumeration, len(components))

	var g errgroup.Group
	g.SetLimit(e.opt.Workers)
	for i, comp := range components {
		g.Go(func() error {
			enums[i] = Enumerate(comp, lim)
			return nil
		})
	}
	g.Wait() // workers never error

	return enums
}

// Deduce runs the deterministic pipeline: extract constraints, split
// them into components, enumerate each and keep verdicts that hold in
// every solution.
func (e *Engine) Deduce(b BoardView) Result {
	res, _ := e.deduce(b)
	return res
}

func (e *Engine) deduce(b BoardView) (Result, []Enumeration) {
	constraints := ExtractConstraints(b)
	if len(constraints) == 0 {
		return Result{Status: StatusNoConstraints}, nil
	}

	components := SplitComponents(constraints)
	enums := e.enumerateAll(components)

	res := Result{Status: StatusStalled}
	for i, en := range enums {
		switch en.Status {
		case EnumContradictory:
			res.Contradictory = append(res.Contradictory, i)
		case EnumCapped:
			res.Capped = append(res.Capped, i)
		}
	}

	res.Deductions = Deduce(enums)
	if len(res.Deductions) > 0 {
		res.Status = StatusDeduced
		for _, d := range res.Deductions {
			res.Actions = append(res.Actions, d.Action(b.Width()))
		}
	}

	Log.WithFields(logrus.Fields{
		"constraints":   len(constraints),
		"components":    len(components),
		"deductions":    len(res.Deductions),
		"contradictory": len(res.Contradictory),
		"capped":        len(res.Capped),
	}).Debug("deterministic pass")

	return res, enums
}

// Guess runs the probabilistic pipeline and emits exactly one reveal,
// or ErrNoLegalMove on a terminal board.
func (e *Engine) Guess(b BoardView) (Action, error) {
	components := SplitComponents(ExtractConstraints(b))
	enums := e.enumerateAll(components)
	return e.guess(b, enums)
}

func (e *Engine) guess(b BoardView, enums []Enumeration) (Action, error) {
	table := EstimateProbabilities(b, enums)

	policy := GuessPolicy{
		SafeThreshold:     e.opt.SafeThreshold,
		InfoGain:          e.opt.InfoGain,
		InfoGainTolerance: e.opt.InfoGainTolerance,
	}
	action, err := SelectGuess(b, table, enums, policy)
	if err != nil {
		return Action{}, err
	}
	if est, ok := table.ByCell[action.Y*b.Width()+action.X]; ok {
		Log.WithFields(logrus.Fields{
			"x": action.X, "y": action.Y,
			"p": est.P, "exact": est.Exact,
		}).Debug("guessing constrained cell")
	} else {
		Log.WithFields(logrus.Fields{
			"x": action.X, "y": action.Y,
			"p": table.UnconstrainedP,
		}).Debug("guessing unconstrained cell")
	}
	return action, nil
}

// Solve is the combined pass: certain deductions if any exist anywhere,
// otherwise a single lowest-risk guess.
func (e *Engine) Solve(b BoardView) (Result, error) {
	res, enums := e.deduce(b)
	if res.Status == StatusDeduced {
		return res, nil
	}

	guess, err := e.guess(b, enums)
	if err != nil {
		return res, err
	}
	res.Status = StatusGuessed
	res.Actions = []Action{guess}
	return res, nil
}
