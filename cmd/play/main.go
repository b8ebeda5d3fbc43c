// Command play runs the automatic player against freshly generated
// games and reports how each one went, with a per-layer breakdown of
// the moves it took.
package main

import (
	"flag"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"minesolver/internal/config"
	"minesolver/internal/game"
	"minesolver/internal/pattern"
	"minesolver/internal/player"
	"minesolver/internal/rules"
	"minesolver/internal/solver"
)

var log = logrus.New()

func main() {
	var (
		width     = flag.Int("width", 16, "board width")
		height    = flag.Int("height", 16, "board height")
		mines     = flag.Int("mines", 40, "mine count")
		games     = flag.Int("games", 1, "number of games to play")
		seed      = flag.Uint64("seed", 0, "rng seed (0 picks a random one)")
		threshold = flag.Float64("threshold", 0, "safe guess threshold override")
		infoGain  = flag.Bool("info-gain", false, "prefer informative guesses among near-equal ones")
		verbose   = flag.Bool("v", false, "debug logging")
		logFile   = flag.String("log-file", "", "also write logs to this file, rotated")
	)
	flag.Parse()

	setupLogging(*verbose, *logFile)

	params := game.GameParams{Width: *width, Height: *height, MineCount: *mines}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	rnd := rand.New(rand.NewPCG(*seed, *seed))

	opt := config.SolverOptions()
	if *threshold > 0 {
		opt.SafeThreshold = *threshold
	}
	opt.InfoGain = opt.InfoGain || *infoGain
	p := player.New(opt)

	log.WithFields(logrus.Fields{
		"board": params.Seed(),
		"seed":  *seed,
		"games": *games,
	}).Info("starting")

	won := 0
	for i := range *games {
		outcome, err := playOne(p, params, rnd)
		if err != nil {
			log.WithField("game", i).Fatal(err)
		}
		if outcome.Won {
			won++
		}
		fields := logrus.Fields{
			"game":  i,
			"won":   outcome.Won,
			"moves": len(outcome.Moves),
		}
		for layer, n := range outcome.ByLayer() {
			fields[layer.String()] = n
		}
		log.WithFields(fields).Info("finished")
	}

	log.WithFields(logrus.Fields{
		"played": *games,
		"won":    won,
	}).Info("done")
}

func playOne(p *player.Player, params game.GameParams, rnd *rand.Rand) (player.Outcome, error) {
	// Starting in the middle maximizes the opening cascade.
	x, y := params.Width/2, params.Height/2
	state, err := game.NewGame(&params, x, y, rnd)
	if err != nil {
		return player.Outcome{}, err
	}
	return p.Play(state)
}

func setupLogging(verbose bool, logFile string) {
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	var hook logrus.Hook
	if logFile != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal(err)
		}
		log.AddHook(hook)
	}

	for _, l := range []*logrus.Logger{
		game.Log, solver.Log, rules.Log, pattern.Log, player.Log,
	} {
		l.SetLevel(level)
		l.SetOutput(os.Stderr)
		if hook != nil {
			l.AddHook(hook)
		}
	}
}
