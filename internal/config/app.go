package config

import "os"

// Port returns the listen address for cmd/server, e.g. ":8080".
func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok {
		return ":8080"
	}
	return port
}
