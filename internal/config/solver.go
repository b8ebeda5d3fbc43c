package config

import (
	"os"
	"strconv"

	"minesolver/internal/solver"
)

func envInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

// SolverOptions reads engine tunables from the environment, falling
// back to the built-in defaults for anything unset or malformed.
func SolverOptions() solver.Options {
	opt := solver.DefaultOptions()
	opt.MaxSolutions = envInt("SOLVER_MAX_SOLUTIONS", opt.MaxSolutions)
	opt.MaxNodes = envInt("SOLVER_MAX_NODES", opt.MaxNodes)
	opt.SafeThreshold = envFloat("SOLVER_SAFE_THRESHOLD", opt.SafeThreshold)
	opt.InfoGainTolerance = envFloat("SOLVER_INFO_GAIN_TOLERANCE", opt.InfoGainTolerance)
	opt.Workers = envInt("SOLVER_WORKERS", opt.Workers)
	if raw, ok := os.LookupEnv("SOLVER_INFO_GAIN"); ok {
		opt.InfoGain = raw != "0"
	}
	return opt
}
